// Package config loads the Cloudflare credentials for one invocation.
package config

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Environment variable keys
const (
	KeyAPIToken  = "CLOUDFLARE_API_TOKEN"
	KeyAccountID = "CLOUDFLARE_ACCOUNT_ID"
)

// Config holds the Cloudflare credentials. Read once at process start,
// never mutated.
type Config struct {
	APIToken  string
	AccountID string
}

// Load reads credentials from the environment. A .env file in the
// working directory is loaded first when present; existing environment
// variables win over file values.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIToken:  os.Getenv(KeyAPIToken),
		AccountID: os.Getenv(KeyAccountID),
	}
}

// Validate reports the first missing credential to w and returns false.
// Callers must not touch the network when validation fails.
func (c Config) Validate(w io.Writer) bool {
	if c.APIToken == "" {
		color.New(color.FgRed).Fprintf(w, "ERROR: %s not set\n", KeyAPIToken)
		return false
	}
	if c.AccountID == "" {
		color.New(color.FgRed).Fprintf(w, "ERROR: %s not set\n", KeyAccountID)
		return false
	}
	return true
}
