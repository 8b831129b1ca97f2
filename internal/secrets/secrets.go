package secrets

import (
	"os"
	"strings"
)

// Source resolves named secrets. Get returns "" when the secret is absent;
// callers decide whether that is fatal.
type Source interface {
	Get(name string) string
}

// EnvSource maps secret names to environment variables:
// "truthlens-api-key" becomes TRUTHLENS_API_KEY.
type EnvSource struct{}

func (EnvSource) Get(name string) string {
	key := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return os.Getenv(key)
}
