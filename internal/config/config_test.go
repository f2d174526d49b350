package config

import (
	"os"
	"reflect"
	"testing"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "rfp_tracker_test")
}

// unsetEnv clears a variable for the test's duration (t.Setenv registers
// the restore, then the value is removed entirely).
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	validEnv(t)
	unsetEnv(t, "PORT")
	unsetEnv(t, "CORS_ORIGINS")
	unsetEnv(t, "CONFIG_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Mongo.URL != "mongodb://localhost:27017" {
		t.Errorf("unexpected mongo url %q", cfg.Mongo.URL)
	}
	if cfg.Mongo.DBName != "rfp_tracker_test" {
		t.Errorf("unexpected db name %q", cfg.Mongo.DBName)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("expected allow-all CORS default, got %q", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadRequiresStoreSettings(t *testing.T) {
	unsetEnv(t, "MONGO_URL")
	unsetEnv(t, "DB_NAME")
	unsetEnv(t, "CONFIG_PATH")

	if _, err := Load(); err == nil {
		t.Fatal("expected Load to fail without MONGO_URL and DB_NAME")
	}
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected Load to fail for missing explicit config file")
	}
}

func TestCORSOrigins(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "Wildcard",
			raw:      "*",
			expected: []string{"*"},
		},
		{
			name:     "Comma separated list is trimmed",
			raw:      "https://app.example.com, https://staging.example.com",
			expected: []string{"https://app.example.com", "https://staging.example.com"},
		},
		{
			name:     "Empty falls back to allow-all",
			raw:      "",
			expected: []string{"*"},
		},
		{
			name:     "Only separators falls back to allow-all",
			raw:      " , ,",
			expected: []string{"*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CORSConfig{AllowedOrigins: tt.raw}
			if got := c.Origins(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
