package config

import (
	"strings"
	"testing"
)

const validKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BACKEND_URL", "http://localhost:8000")
	t.Setenv("SESSION_HASH_KEY", validKey)
	t.Setenv("CSRF_KEY", validKey)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ENV", "")
}

func TestLoad_Defaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("unexpected backend URL: %q", cfg.BackendURL)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("want default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.Env != "development" || cfg.IsProduction() {
		t.Errorf("want development by default, got %q", cfg.Env)
	}
	if len(cfg.SessionHashKey) != 32 || len(cfg.CSRFKey) != 32 {
		t.Errorf("keys must decode to 32 bytes, got %d and %d", len(cfg.SessionHashKey), len(cfg.CSRFKey))
	}
}

func TestLoad_RequiresBackendURL(t *testing.T) {
	setValidEnv(t)
	t.Setenv("BACKEND_URL", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "BACKEND_URL") {
		t.Errorf("want BACKEND_URL error, got %v", err)
	}
}

func TestLoad_RejectsBadPort(t *testing.T) {
	setValidEnv(t)

	for _, port := range []string{"abc", "0", "70000", "-1"} {
		t.Setenv("SERVER_PORT", port)
		if _, err := Load(); err == nil {
			t.Errorf("port %q must be rejected", port)
		}
	}
}

func TestLoad_RejectsShortKeys(t *testing.T) {
	setValidEnv(t)

	t.Setenv("SESSION_HASH_KEY", "deadbeef")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SESSION_HASH_KEY") {
		t.Errorf("short session key must be rejected, got %v", err)
	}

	t.Setenv("SESSION_HASH_KEY", validKey)
	t.Setenv("CSRF_KEY", "not-hex")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "CSRF_KEY") {
		t.Errorf("non-hex CSRF key must be rejected, got %v", err)
	}
}
