package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "stdio" {
		t.Errorf("Expected default mode to be 'stdio', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.ServerName != "pii-extractor" {
		t.Errorf("Expected default server name to be 'pii-extractor', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 16*1024*1024 {
		t.Errorf("Expected default max file size to be 16MB, got %d", cfg.MaxFileSize)
	}

	if cfg.PhoneRegion != "IN" {
		t.Errorf("Expected default phone region to be 'IN', got '%s'", cfg.PhoneRegion)
	}

	if cfg.NameAPIEnabled {
		t.Error("Expected name API to be disabled by default")
	}

	currentDir, _ := os.Getwd()
	if cfg.DocumentDirectory != currentDir {
		t.Errorf("Expected default document directory to be '%s', got '%s'", currentDir, cfg.DocumentDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tmpDir := t.TempDir()

	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.DocumentDirectory = tmpDir
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config - stdio mode",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "valid config - server mode",
			mutate: func(c *Config) {
				c.Mode = ModeServer
			},
			wantErr: false,
		},
		{
			name: "invalid mode",
			mutate: func(c *Config) {
				c.Mode = "invalid"
			},
			wantErr: true,
		},
		{
			name: "port out of range in server mode",
			mutate: func(c *Config) {
				c.Mode = ModeServer
				c.Port = 70000
			},
			wantErr: true,
		},
		{
			name: "port ignored in stdio mode",
			mutate: func(c *Config) {
				c.Port = 70000
			},
			wantErr: false,
		},
		{
			name: "empty document directory",
			mutate: func(c *Config) {
				c.DocumentDirectory = ""
			},
			wantErr: true,
		},
		{
			name: "zero max file size",
			mutate: func(c *Config) {
				c.MaxFileSize = 0
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			mutate: func(c *Config) {
				c.LogLevel = "verbose"
			},
			wantErr: true,
		},
		{
			name: "name api enabled without endpoint",
			mutate: func(c *Config) {
				c.NameAPIEnabled = true
				c.NameAPIURL = ""
			},
			wantErr: true,
		},
		{
			name: "name api enabled with zero timeout",
			mutate: func(c *Config) {
				c.NameAPIEnabled = true
				c.NameAPITimeout = 0
			},
			wantErr: true,
		},
		{
			name: "name api enabled with sane settings",
			mutate: func(c *Config) {
				c.NameAPIEnabled = true
				c.NameAPITimeout = 2 * time.Second
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesMissingDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DocumentDirectory = filepath.Join(t.TempDir(), "docs")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if _, err := os.Stat(cfg.DocumentDirectory); err != nil {
		t.Errorf("document directory was not created: %v", err)
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "0.0.0.0"
	cfg.Port = 9090

	if cfg.Address() != "0.0.0.0:9090" {
		t.Errorf("Address() = %s", cfg.Address())
	}

	if cfg.IsDebug() {
		t.Error("IsDebug() should be false for info level")
	}
	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("IsDebug() should be true for debug level")
	}

	if !cfg.IsStdioMode() || cfg.IsServerMode() {
		t.Error("mode helpers disagree with stdio mode")
	}
	cfg.Mode = ModeServer
	if cfg.IsStdioMode() || !cfg.IsServerMode() {
		t.Error("mode helpers disagree with server mode")
	}
}
