package config

import (
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"PORT",
	"ENVIRONMENT",
	"STAGE",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"SHUTDOWN_TIMEOUT",
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				if config.Port != "8081" {
					t.Errorf("Expected default port 8081, got %s", config.Port)
				}
				if config.Environment != "development" {
					t.Errorf("Expected default environment development, got %s", config.Environment)
				}
				if config.Log.Level != "info" {
					t.Errorf("Expected default log level info, got %s", config.Log.Level)
				}
				if config.Log.Format != "text" {
					t.Errorf("Expected default log format text, got %s", config.Log.Format)
				}
				if config.Server.RateLimitRPS != 100 {
					t.Errorf("Expected default rate limit 100, got %f", config.Server.RateLimitRPS)
				}
				if config.Server.RateLimitBurst != 200 {
					t.Errorf("Expected default burst 200, got %d", config.Server.RateLimitBurst)
				}
				if config.Server.ShutdownTimeout != 30*time.Second {
					t.Errorf("Expected default shutdown timeout 30s, got %s", config.Server.ShutdownTimeout)
				}
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":             "9090",
				"ENVIRONMENT":      "production",
				"LOG_LEVEL":        "debug",
				"LOG_FORMAT":       "json",
				"RATE_LIMIT_RPS":   "5.5",
				"RATE_LIMIT_BURST": "10",
				"SHUTDOWN_TIMEOUT": "5s",
			},
			check: func(t *testing.T, config *Config) {
				if config.Port != "9090" {
					t.Errorf("Expected port 9090, got %s", config.Port)
				}
				if !config.IsProduction() {
					t.Error("Expected production environment")
				}
				if config.Log.Level != "debug" {
					t.Errorf("Expected log level debug, got %s", config.Log.Level)
				}
				if config.Log.Format != "json" {
					t.Errorf("Expected log format json, got %s", config.Log.Format)
				}
				if config.Server.RateLimitRPS != 5.5 {
					t.Errorf("Expected rate limit 5.5, got %f", config.Server.RateLimitRPS)
				}
				if config.Server.RateLimitBurst != 10 {
					t.Errorf("Expected burst 10, got %d", config.Server.RateLimitBurst)
				}
				if config.Server.ShutdownTimeout != 5*time.Second {
					t.Errorf("Expected shutdown timeout 5s, got %s", config.Server.ShutdownTimeout)
				}
			},
		},
		{
			name:    "invalid log format",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			envVars: map[string]string{"PORT": "http"},
			wantErr: true,
		},
		{
			name:    "zero burst",
			envVars: map[string]string{"RATE_LIMIT_BURST": "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range configKeys {
				t.Setenv(key, "")
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			config, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !strings.Contains(err.Error(), "invalid configuration") {
					t.Errorf("Expected invalid configuration error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, config)
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	t.Run("server mode leaves config untouched", func(t *testing.T) {
		config := &Config{Stage: "dev", Log: LogConfig{Format: "text"}}
		adapted := AdaptConfigForServerless(config, &ServerlessConfig{IsLambda: false})
		if adapted.Log.Format != "text" {
			t.Errorf("Expected text format, got %s", adapted.Log.Format)
		}
	})

	t.Run("lambda switches to json logs", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "")
		config := &Config{Stage: "dev", Log: LogConfig{Format: "text"}}
		adapted := AdaptConfigForServerless(config, &ServerlessConfig{IsLambda: true, Stage: "prod"})
		if adapted.Log.Format != "json" {
			t.Errorf("Expected json format, got %s", adapted.Log.Format)
		}
		if adapted.Stage != "prod" {
			t.Errorf("Expected stage prod, got %s", adapted.Stage)
		}
	})

	t.Run("explicit log format wins in lambda", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "text")
		config := &Config{Stage: "dev", Log: LogConfig{Format: "text"}}
		adapted := AdaptConfigForServerless(config, &ServerlessConfig{IsLambda: true})
		if adapted.Log.Format != "text" {
			t.Errorf("Expected text format, got %s", adapted.Log.Format)
		}
	})
}

func TestDetectServerless(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "hello-fn")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("STAGE", "")

	sc := detectServerless()
	if !sc.IsLambda {
		t.Error("Expected lambda mode")
	}
	if sc.FunctionName != "hello-fn" {
		t.Errorf("Expected function name hello-fn, got %s", sc.FunctionName)
	}
	if sc.Region != "eu-west-1" {
		t.Errorf("Expected region eu-west-1, got %s", sc.Region)
	}
	if sc.Stage != "dev" {
		t.Errorf("Expected default stage dev, got %s", sc.Stage)
	}
}
