package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestReadConfig(t *testing.T) {
	var (
		err         error
		projectRoot string
	)

	// Get the project root by going up from internal/config
	projectRoot, err = filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	var cfg Config

	cfg, err = ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	// Test DB config
	if cfg.DB.Host == "" {
		t.Error("DB.Host should not be empty")
	}

	// Test Mongo config
	if cfg.Mongo.URI == "" {
		t.Error("Mongo.URI should not be empty")
	}

	if cfg.Mongo.Name == "" {
		t.Error("Mongo.Name should not be empty")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
				Mongo: Mongo{
					URI: "mongodb://localhost:27017/",
				},
			},
			wantErr: false,
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
				Mongo: Mongo{
					URI: "mongodb://localhost:27017/",
				},
			},
			wantErr: true,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
				Mongo: Mongo{
					URI: "mongodb://localhost:27017/",
				},
			},
			wantErr: true,
		},
		{
			name: "missing mongo URI",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidationShutDownTimeDefault(t *testing.T) {
	cfg := Config{
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Mongo: Mongo{
			URI: "mongodb://localhost:27017/",
		},
	}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("ShutDownTime = %v, want default 5", cfg.Webserver.ShutDownTime)
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	var (
		err         error
		projectRoot string
	)

	projectRoot, err = filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv("TICKET_OFFICE_CONFIG_JSON", jsonOverride)

	var cfg Config

	cfg, err = ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}
}

func TestDumpConfig(t *testing.T) {
	var err error

	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	var tomlStr string

	tomlStr, err = DumpConfig(cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if tomlStr == "" {
		t.Error("DumpConfig() returned empty string")
	}

	// Check if output contains expected values
	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	var err error

	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	var jsonStr string

	jsonStr, err = DumpConfigJSON(cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if jsonStr == "" {
		t.Error("DumpConfigJSON() returned empty string")
	}

	// Check if output is valid JSON by checking for expected fields
	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}
}
