package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Endpoint != "http://localhost:8080/api/send-email" {
		t.Errorf("default endpoint = %q", cfg.Endpoint)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("default http timeout = %s", cfg.HTTPTimeout)
	}
	if cfg.StatusTTL != 5*time.Second {
		t.Errorf("default status ttl = %s", cfg.StatusTTL)
	}
	if cfg.Port != "8080" {
		t.Errorf("default port = %q", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONTACT_ENDPOINT", "https://example.com/api/send-email")
	t.Setenv("CONTACT_STATUS_TTL", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Endpoint != "https://example.com/api/send-email" {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.StatusTTL != 2*time.Second {
		t.Errorf("status ttl = %s", cfg.StatusTTL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad endpoint", "CONTACT_ENDPOINT", "not a url"},
		{"zero timeout", "CONTACT_HTTP_TIMEOUT", "0s"},
		{"negative ttl", "CONTACT_STATUS_TTL", "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}
