package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}

	if cfg.Artifacts.Dir != "./artifacts" {
		t.Errorf("Artifacts.Dir = %q, want ./artifacts", cfg.Artifacts.Dir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ARTIFACTS_DIR", "/opt/models")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}

	if cfg.Artifacts.Dir != "/opt/models" {
		t.Errorf("Artifacts.Dir = %q, want /opt/models", cfg.Artifacts.Dir)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() with invalid port should return an error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "port out of range",
			modify:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "zero port",
			modify:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Server.ReadTimeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "empty artifacts dir",
			modify:  func(c *Config) { c.Artifacts.Dir = "" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}

			tt.modify(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
