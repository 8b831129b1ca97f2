package server

import "github.com/pramana/truthlens/internal/config"

// estimateCost is a declarative cost model, not a metered one: a fixed base
// plus a per-kilobyte text surcharge, a flat image surcharge and a flat
// deep-mode surcharge.
func estimateCost(cfg config.CostConfig, mode string, textLen int, hasImage bool) float64 {
	cost := cfg.Base + float64(textLen)/1000.0*cfg.PerKBText
	if hasImage {
		cost += cfg.Image
	}
	if mode == "deep" {
		cost += cfg.Deep
	}
	return cost
}
