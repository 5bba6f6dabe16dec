package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "datagotchi",
			Username: "user",
		},
		API: APIConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 30,
		},
		Storage: StorageConfig{
			StateDirectory: filepath.Join(xdg.StateHome, "datagotchi"),
		},
		Ingestion: IngestionConfig{
			MaxFileSizeBytes: DefaultMaxFileSizeBytes,
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `database:
  host: db.example.com
  port: 3307
  database: pets
  username: admin
api:
  base_url: https://api.datagotchi.example
  timeout_seconds: 10
storage:
  state_directory: /tmp/datagotchi
ingestion:
  max_file_size_bytes: 1024
`,
			want: func() *Config {
				return &Config{
					Database: DatabaseConfig{
						Host:     "db.example.com",
						Port:     3307,
						Database: "pets",
						Username: "admin",
					},
					API: APIConfig{
						BaseURL:        "https://api.datagotchi.example",
						TimeoutSeconds: 10,
					},
					Storage:   StorageConfig{StateDirectory: "/tmp/datagotchi"},
					Ingestion: IngestionConfig{MaxFileSizeBytes: 1024},
				}
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `database:
  host: custom-host
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Host = "custom-host"
				return cfg
			},
		},
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "secrets bound from environment",
			configContent: `database:
  password: from-file
`,
			env: map[string]string{
				"DB_PASSWORD":             "from-env",
				"DATAGOTCHI_API_KEY":      "secret-key",
				"DATAGOTCHI_API_BASE_URL": "https://env.example",
			},
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Password = "from-env"
				cfg.API.APIKey = "secret-key"
				cfg.API.BaseURL = "https://env.example"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `database:
  host: localhost
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid base url fails validation",
			configContent: `api:
  base_url: not a url
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url",
			},
		},
		{
			name: "zero file size ceiling fails validation",
			configContent: `ingestion:
  max_file_size_bytes: 0
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"max_file_size_bytes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DB_PASSWORD", "DATAGOTCHI_API_KEY", "DATAGOTCHI_API_BASE_URL"} {
				t.Setenv(key, tt.env[key])
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestStorageConfig_LocalStorePath(t *testing.T) {
	cfg := StorageConfig{StateDirectory: filepath.Join("state", "datagotchi")}
	assert.Equal(t, filepath.Join("state", "datagotchi", "session.db"), cfg.LocalStorePath())
}
