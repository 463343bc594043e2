package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv(KeyAPIToken, "tok-123")
	t.Setenv(KeyAccountID, "acc-456")

	cfg := Load()
	if cfg.APIToken != "tok-123" {
		t.Errorf("expected token tok-123, got %q", cfg.APIToken)
	}
	if cfg.AccountID != "acc-456" {
		t.Errorf("expected account acc-456, got %q", cfg.AccountID)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	contents := KeyAPIToken + "=file-token\n" + KeyAccountID + "=file-account\n"
	if err := os.WriteFile(envFile, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })

	// t.Setenv registers the restore, Unsetenv makes the vars truly absent
	t.Setenv(KeyAPIToken, "x")
	t.Setenv(KeyAccountID, "x")
	os.Unsetenv(KeyAPIToken)
	os.Unsetenv(KeyAccountID)

	cfg := Load()
	if cfg.APIToken != "file-token" || cfg.AccountID != "file-account" {
		t.Errorf("expected .env values, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		valid       bool
		wantMessage string
	}{
		{"both set", Config{APIToken: "t", AccountID: "a"}, true, ""},
		{"missing token", Config{AccountID: "a"}, false, "ERROR: CLOUDFLARE_API_TOKEN not set"},
		{"missing account", Config{APIToken: "t"}, false, "ERROR: CLOUDFLARE_ACCOUNT_ID not set"},
		{"both missing reports token first", Config{}, false, "ERROR: CLOUDFLARE_API_TOKEN not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := tt.cfg.Validate(&buf)
			if got != tt.valid {
				t.Errorf("Validate() = %v, want %v", got, tt.valid)
			}
			if tt.wantMessage == "" {
				if buf.Len() != 0 {
					t.Errorf("expected no output, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.wantMessage) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.wantMessage)
			}
		})
	}
}
