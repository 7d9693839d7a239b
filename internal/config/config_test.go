package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"LOG_MODE",
	"SERVER_PORT",
	"MAX_ACTIVE_RUNS",
	"RETAINED_RUNS",
	"MAX_ITEMS_PER_RUN",
	"ITEM_DELAY_MS",
	"HISTORY_BACKEND",
	"HISTORY_LIMIT",
	"REDIS_ADDR",
	"REFERENCE_MAX_DIMENSION",
	"GENAI_BASE_URL",
	"GENAI_API_KEY",
	"GENAI_MODEL",
	"GENAI_TIMEOUT_SECONDS",
}

func unsetConfigEnv() {
	for _, key := range configEnvVars {
		os.Unsetenv(key)
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheckEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   []string
		setup     func()
		teardown  func()
		wantError bool
	}{
		{
			name:    "AllVariablesPresent",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
				os.Setenv("TEST_VAR_2", "value2")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
				os.Unsetenv("TEST_VAR_2")
			},
			wantError: false,
		},
		{
			name:    "OneVariableMissing",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
		{
			name:    "VariablePresentButEmpty",
			envVars: []string{"TEST_VAR_1"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				if tt.teardown != nil {
					tt.teardown()
				}
			}()

			err := checkEnv(tt.envVars)
			if (err != nil) != tt.wantError {
				t.Errorf("checkEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
	}{
		{
			name: "AllRequiredVariablesPresent",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
				os.Setenv("SERVER_PORT", "8080")
				os.Setenv("MAX_ACTIVE_RUNS", "10")
			},
			wantError: false,
		},
		{
			name: "MissingOneRequiredVariable",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
				os.Setenv("SERVER_PORT", "8080")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv()
			defer unsetConfigEnv()

			tt.setup()

			err := validateEnv()
			if (err != nil) != tt.wantError {
				t.Errorf("validateEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestStringToInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "ValidNumber", input: "42", want: 42},
		{name: "InvalidNumber", input: "not_a_number", want: 0},
		{name: "EmptyString", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringToInt(tt.input))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		path      string
		want      *Config
		wantError bool
	}{
		{
			name: "DefaultsApplied",
			content: "LOG_MODE=debug\n" +
				"SERVER_PORT=8080\n" +
				"MAX_ACTIVE_RUNS=10\n",
			want: &Config{
				LogMode:               "debug",
				ServerPort:            "8080",
				MaxActiveRuns:         10,
				RetainedRuns:          100,
				MaxItemsPerRun:        20,
				ItemDelay:             time.Second,
				HistoryBackend:        HistoryBackendMemory,
				HistoryLimit:          200,
				RedisAddr:             "localhost:6379",
				ReferenceMaxDimension: 1536,
				GenAI:                 GenAIConfig{TimeoutSeconds: 120},
			},
		},
		{
			name: "AllValuesSet",
			content: "LOG_MODE=prod\n" +
				"SERVER_PORT=9090\n" +
				"MAX_ACTIVE_RUNS=2\n" +
				"RETAINED_RUNS=10\n" +
				"MAX_ITEMS_PER_RUN=5\n" +
				"ITEM_DELAY_MS=500\n" +
				"HISTORY_BACKEND=redis\n" +
				"HISTORY_LIMIT=50\n" +
				"REDIS_ADDR=redis:6379\n" +
				"REFERENCE_MAX_DIMENSION=1024\n" +
				"GENAI_BASE_URL=http://genai.local/v1\n" +
				"GENAI_API_KEY=secret\n" +
				"GENAI_MODEL=studio-2\n" +
				"GENAI_TIMEOUT_SECONDS=30\n",
			want: &Config{
				LogMode:               "prod",
				ServerPort:            "9090",
				MaxActiveRuns:         2,
				RetainedRuns:          10,
				MaxItemsPerRun:        5,
				ItemDelay:             500 * time.Millisecond,
				HistoryBackend:        HistoryBackendRedis,
				HistoryLimit:          50,
				RedisAddr:             "redis:6379",
				ReferenceMaxDimension: 1024,
				GenAI: GenAIConfig{
					BaseURL:        "http://genai.local/v1",
					APIKey:         "secret",
					Model:          "studio-2",
					TimeoutSeconds: 30,
				},
			},
		},
		{
			name: "InvalidMaxActiveRuns",
			content: "LOG_MODE=debug\n" +
				"SERVER_PORT=8080\n" +
				"MAX_ACTIVE_RUNS=many\n",
			wantError: true,
		},
		{
			name: "UnknownHistoryBackend",
			content: "LOG_MODE=debug\n" +
				"SERVER_PORT=8080\n" +
				"MAX_ACTIVE_RUNS=1\n" +
				"HISTORY_BACKEND=mongo\n",
			wantError: true,
		},
		{
			name:      "MissingRequired",
			content:   "LOG_MODE=debug\n",
			wantError: true,
		},
		{
			name:      "MissingEnvFile",
			path:      "nonexistent_file",
			wantError: true,
		},
		{
			name:      "EmptyEnvFilePath",
			path:      "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv()
			defer unsetConfigEnv()

			path := tt.path
			if tt.content != "" {
				path = writeEnvFile(t, tt.content)
			}

			got, err := LoadConfig(path)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
