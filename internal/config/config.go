package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type FactCheckConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

type NewsConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

type StorageConfig struct {
	Bucket          string `toml:"bucket"`
	CredentialsFile string `toml:"credentials_file"`
}

type AuditConfig struct {
	URL    string `toml:"url"`
	Token  string `toml:"token"`
	Org    string `toml:"org"`
	Bucket string `toml:"bucket"`
}

type TimeoutConfig struct {
	ReasonerSeconds int `toml:"reasoner_seconds"`
	EvidenceSeconds int `toml:"evidence_seconds"`
}

type CostConfig struct {
	Base      float64 `toml:"base"`
	PerKBText float64 `toml:"per_kb_text"`
	Image     float64 `toml:"image"`
	Deep      float64 `toml:"deep"`
}

// PromptConfig carries the pipeline's prompt templates. Verify templates are
// keyed by language tag and take claim, evidence block, fact-check block and
// current year, in that order. Empty fields fall back to built-in prompts.
type PromptConfig struct {
	Verify  map[string]string `toml:"verify"`
	Refine  string            `toml:"refine"`
	Caption string            `toml:"caption"`
	OCR     string            `toml:"ocr"`
}

type Config struct {
	LLM       LLMConfig       `toml:"llm"`
	FactCheck FactCheckConfig `toml:"factcheck"`
	News      NewsConfig      `toml:"news"`
	Storage   StorageConfig   `toml:"storage"`
	Audit     AuditConfig     `toml:"audit"`
	Timeouts  TimeoutConfig   `toml:"timeouts"`
	Cost      CostConfig      `toml:"cost"`
	Prompts   PromptConfig    `toml:"prompts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields. Load calls it; tests and callers that
// build a Config by hand can call it directly.
func (c *Config) ApplyDefaults() {
	if c.FactCheck.BaseURL == "" {
		c.FactCheck.BaseURL = "https://factchecktools.googleapis.com/v1alpha1"
	}
	if c.Timeouts.ReasonerSeconds == 0 {
		c.Timeouts.ReasonerSeconds = 60
	}
	if c.Timeouts.EvidenceSeconds == 0 {
		c.Timeouts.EvidenceSeconds = 10
	}
	if c.Cost.Base == 0 {
		c.Cost.Base = 0.001
	}
	if c.Cost.PerKBText == 0 {
		c.Cost.PerKBText = 0.0001
	}
	if c.Cost.Image == 0 {
		c.Cost.Image = 0.002
	}
	if c.Cost.Deep == 0 {
		c.Cost.Deep = 0.0005
	}
}
