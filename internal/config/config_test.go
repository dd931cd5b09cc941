package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 9090
numbersapi:
  host: mirror.example.com
  timeout_seconds: 5
  retry_attempts: 2
probe:
  address: 1.1.1.1:53
  timeout_seconds: 1
cache:
  backend: db
  database_path: custom/trivia.db
`,
			want: &Config{
				Server: ServerConfig{
					Port: 9090,
					CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
				},
				NumbersAPI: NumbersAPIConfig{
					Host:           "mirror.example.com",
					TimeoutSeconds: 5,
					RetryAttempts:  2,
				},
				Probe: ProbeConfig{
					Address:        "1.1.1.1:53",
					TimeoutSeconds: 1,
				},
				Cache: CacheConfig{
					Backend:      "db",
					FilePath:     filepath.Join("cache", "last_trivia.json"),
					DatabasePath: "custom/trivia.db",
				},
			},
		},
		{
			name:          "missing config file uses defaults",
			configContent: "",
			want: &Config{
				Server: ServerConfig{
					Port: 8080,
					CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
				},
				NumbersAPI: NumbersAPIConfig{
					Host:           "numbersapi.com",
					TimeoutSeconds: 10,
					RetryAttempts:  3,
				},
				Probe: ProbeConfig{
					Address:        "8.8.8.8:53",
					TimeoutSeconds: 3,
				},
				Cache: CacheConfig{
					Backend:      "file",
					FilePath:     filepath.Join("cache", "last_trivia.json"),
					DatabasePath: filepath.Join("cache", "trivia.db"),
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown cache backend",
			configContent: `cache:
  backend: redis
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"backend must be one of",
			},
		},
		{
			name: "invalid server port",
			configContent: `server:
  port: -1
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"port must be greater than 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.configContent != "" {
				configPath = filepath.Join(tempDir, "config.yaml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				// No file anywhere viper looks, so defaults apply.
				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					require.NoError(t, os.Chdir(originalDir))
				}()
				require.NoError(t, os.Chdir(tempDir))
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
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("NUMBERS_API_HOST", "env.example.com")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(t.TempDir()))

	loader, err := NewConfigLoader("")
	require.NoError(t, err)

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "env.example.com", got.NumbersAPI.Host)
}
