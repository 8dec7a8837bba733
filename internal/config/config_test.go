package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	saved := map[string]string{}
	for _, key := range []string{"BOT_TOKEN", "GEMINI_API_KEY", "DB_PASSWORD", "MATCH_THRESHOLD"} {
		saved[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	defer func() {
		for key, value := range saved {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing bot token",
			env:     map[string]string{"GEMINI_API_KEY": "key", "DB_PASSWORD": "pass"},
			wantErr: "BOT_TOKEN is required",
		},
		{
			name:    "missing gemini key",
			env:     map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pass"},
			wantErr: "GEMINI_API_KEY is required",
		},
		{
			name:    "missing db password",
			env:     map[string]string{"BOT_TOKEN": "token", "GEMINI_API_KEY": "key"},
			wantErr: "DB_PASSWORD is required",
		},
		{
			name: "invalid threshold",
			env: map[string]string{
				"BOT_TOKEN":       "token",
				"GEMINI_API_KEY":  "key",
				"DB_PASSWORD":     "pass",
				"MATCH_THRESHOLD": "abc",
			},
			wantErr: "invalid MATCH_THRESHOLD",
		},
		{
			name: "threshold out of range",
			env: map[string]string{
				"BOT_TOKEN":       "token",
				"GEMINI_API_KEY":  "key",
				"DB_PASSWORD":     "pass",
				"MATCH_THRESHOLD": "1.5",
			},
			wantErr: "MATCH_THRESHOLD must be in (0, 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				os.Setenv(key, value)
			}
			defer func() {
				for key := range tt.env {
					os.Unsetenv(key)
				}
			}()

			_, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	env := map[string]string{
		"BOT_TOKEN":      "token",
		"GEMINI_API_KEY": "key",
		"DB_PASSWORD":    "pass",
	}
	for key, value := range env {
		os.Setenv(key, value)
	}
	defer func() {
		for key := range env {
			os.Unsetenv(key)
		}
	}()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 0.4, cfg.MatchThreshold)
	assert.Equal(t, "en-US", cfg.SpeechLocale)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "fixie", cfg.Database.Name)
}
