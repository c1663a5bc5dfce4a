package lastfm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAPIKeyFromEnv_Precedence(t *testing.T) {
	for _, name := range APIKeyEnvNames {
		t.Setenv(name, "")
	}
	t.Setenv("NEXT_PUBLIC_LASTFM_API_KEY", "next-key")
	t.Setenv("VITE_LASTFM_API_KEY", "vite-key")

	key, name, ok := APIKeyFromEnv(OSEnv)
	if !ok {
		t.Fatal("expected a key to be found")
	}
	if key != "vite-key" || name != "VITE_LASTFM_API_KEY" {
		t.Errorf("expected vite-key from VITE_LASTFM_API_KEY, got %s from %s", key, name)
	}

	t.Setenv("LASTFM_API_KEY", "plain-key")
	key, name, _ = APIKeyFromEnv(OSEnv)
	if key != "plain-key" || name != "LASTFM_API_KEY" {
		t.Errorf("expected plain-key from LASTFM_API_KEY, got %s from %s", key, name)
	}
}

func TestAPIKeyFromEnv_NotFound(t *testing.T) {
	for _, name := range APIKeyEnvNames {
		t.Setenv(name, "")
	}

	if key, _, ok := APIKeyFromEnv(OSEnv, nil); ok {
		t.Errorf("expected no key, got %q", key)
	}
	if _, _, ok := APIKeyFromEnv(); ok {
		t.Error("expected no key without sources")
	}
}

func TestDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# local settings\nREACT_APP_LASTFM_API_KEY=dotenv-key\nOTHER=1\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	src, err := DotEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range APIKeyEnvNames {
		t.Setenv(name, "")
	}
	key, name, ok := APIKeyFromEnv(OSEnv, src)
	if !ok || key != "dotenv-key" || name != "REACT_APP_LASTFM_API_KEY" {
		t.Errorf("expected dotenv-key from REACT_APP_LASTFM_API_KEY, got %q from %q (ok=%v)", key, name, ok)
	}

	if v, _ := os.LookupEnv("OTHER"); v == "1" {
		t.Error("DotEnv must not modify the process environment")
	}
}

func TestDotEnv_MissingFile(t *testing.T) {
	if _, err := DotEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
