package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PRICEPULSE_SERVER_PORT")
		os.Unsetenv("PRICEPULSE_SERVER_ENVIRONMENT")
		os.Unsetenv("PRICEPULSE_LLM_API_KEY")
		os.Unsetenv("PRICEPULSE_LLM_MODEL")
		os.Unsetenv("PRICEPULSE_LLM_TIMEOUT")
		os.Unsetenv("PRICEPULSE_LLM_REQUESTS_PER_SECOND")
		os.Unsetenv("PRICEPULSE_LLM_BURST")
		os.Unsetenv("PRICEPULSE_MONGO_ENABLED")
		os.Unsetenv("PRICEPULSE_MONGO_URI")
		os.Unsetenv("PRICEPULSE_MONGO_DATABASE")
		os.Unsetenv("PRICEPULSE_BATCH_WORKERS")
		os.Unsetenv("PRICEPULSE_BATCH_CURRENCY")
		os.Unsetenv("PRICEPULSE_CLASSIFICATION_CONFIDENCE_THRESHOLD")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.LLM.APIKey != "" {
			t.Errorf("LLM.APIKey = %s, want empty (pattern-only mode)", cfg.LLM.APIKey)
		}
		if cfg.LLM.BaseURL != "https://api.groq.com/openai/v1" {
			t.Errorf("LLM.BaseURL = %s, want Groq endpoint", cfg.LLM.BaseURL)
		}
		if cfg.LLM.Model != "llama-3.1-8b-instant" {
			t.Errorf("LLM.Model = %s, want llama-3.1-8b-instant", cfg.LLM.Model)
		}
		if cfg.LLM.Timeout != 30*time.Second {
			t.Errorf("LLM.Timeout = %v, want 30s", cfg.LLM.Timeout)
		}
		if cfg.LLM.RequestsPerSecond != 0.5 {
			t.Errorf("LLM.RequestsPerSecond = %v, want 0.5", cfg.LLM.RequestsPerSecond)
		}
		if cfg.LLM.Burst != 5 {
			t.Errorf("LLM.Burst = %d, want 5", cfg.LLM.Burst)
		}
		if !cfg.Mongo.Enabled {
			t.Error("Mongo.Enabled = false, want true")
		}
		if cfg.Mongo.Database != "pricepulse" {
			t.Errorf("Mongo.Database = %s, want pricepulse", cfg.Mongo.Database)
		}
		if cfg.Batch.Workers != 8 {
			t.Errorf("Batch.Workers = %d, want 8", cfg.Batch.Workers)
		}
		if cfg.Batch.Currency != "SAR" {
			t.Errorf("Batch.Currency = %s, want SAR", cfg.Batch.Currency)
		}
		if cfg.Complexity.WordCountThreshold != 5 {
			t.Errorf("Complexity.WordCountThreshold = %d, want 5", cfg.Complexity.WordCountThreshold)
		}
		if cfg.Complexity.LengthThreshold != 50 {
			t.Errorf("Complexity.LengthThreshold = %d, want 50", cfg.Complexity.LengthThreshold)
		}
		if cfg.Classification.ConfidenceThreshold != 0.85 {
			t.Errorf("Classification.ConfidenceThreshold = %v, want 0.85", cfg.Classification.ConfidenceThreshold)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPULSE_SERVER_PORT", "9090")
		os.Setenv("PRICEPULSE_SERVER_ENVIRONMENT", "production")
		os.Setenv("PRICEPULSE_LLM_API_KEY", "gsk-test-key")
		os.Setenv("PRICEPULSE_LLM_MODEL", "llama-3.3-70b-versatile")
		os.Setenv("PRICEPULSE_LLM_TIMEOUT", "45s")
		os.Setenv("PRICEPULSE_LLM_REQUESTS_PER_SECOND", "2")
		os.Setenv("PRICEPULSE_LLM_BURST", "10")
		os.Setenv("PRICEPULSE_MONGO_URI", "mongodb://db:27017")
		os.Setenv("PRICEPULSE_BATCH_WORKERS", "4")
		os.Setenv("PRICEPULSE_BATCH_CURRENCY", "USD")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.LLM.APIKey != "gsk-test-key" {
			t.Errorf("LLM.APIKey = %s, want gsk-test-key", cfg.LLM.APIKey)
		}
		if cfg.LLM.Model != "llama-3.3-70b-versatile" {
			t.Errorf("LLM.Model = %s, want llama-3.3-70b-versatile", cfg.LLM.Model)
		}
		if cfg.LLM.Timeout != 45*time.Second {
			t.Errorf("LLM.Timeout = %v, want 45s", cfg.LLM.Timeout)
		}
		if cfg.LLM.RequestsPerSecond != 2 {
			t.Errorf("LLM.RequestsPerSecond = %v, want 2", cfg.LLM.RequestsPerSecond)
		}
		if cfg.LLM.Burst != 10 {
			t.Errorf("LLM.Burst = %d, want 10", cfg.LLM.Burst)
		}
		if cfg.Mongo.URI != "mongodb://db:27017" {
			t.Errorf("Mongo.URI = %s, want mongodb://db:27017", cfg.Mongo.URI)
		}
		if cfg.Batch.Workers != 4 {
			t.Errorf("Batch.Workers = %d, want 4", cfg.Batch.Workers)
		}
		if cfg.Batch.Currency != "USD" {
			t.Errorf("Batch.Currency = %s, want USD", cfg.Batch.Currency)
		}
	})

	t.Run("fails validation for zero workers", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPULSE_BATCH_WORKERS", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero workers")
		}
	})

	t.Run("fails validation for out-of-range confidence threshold", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPULSE_CLASSIFICATION_CONFIDENCE_THRESHOLD", "1.5")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for threshold > 1")
		}
	})
}

func TestValidate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			LLM:   LLMConfig{RequestsPerSecond: 0.5, Burst: 5},
			Mongo: MongoConfig{Enabled: true, URI: "mongodb://localhost:27017"},
			Batch: BatchConfig{Workers: 8},
			Complexity: ComplexityConfig{
				WordCountThreshold: 5,
				LengthThreshold:    50,
			},
			Classification: ClassificationConfig{ConfidenceThreshold: 0.85},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(validConfig()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when mongo enabled without URI", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mongo.URI = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for missing Mongo URI")
		}
	})

	t.Run("allows empty URI when mongo disabled", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mongo.Enabled = false
		cfg.Mongo.URI = ""
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil when mongo disabled", err)
		}
	})

	t.Run("fails for non-positive llm rate", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.RequestsPerSecond = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero llm rate")
		}
	})

	t.Run("fails for non-positive workers", func(t *testing.T) {
		cfg := validConfig()
		cfg.Batch.Workers = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero workers")
		}
	})

	t.Run("fails for zero confidence threshold", func(t *testing.T) {
		cfg := validConfig()
		cfg.Classification.ConfidenceThreshold = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero threshold")
		}
	})

	t.Run("accepts threshold of exactly one", func(t *testing.T) {
		cfg := validConfig()
		cfg.Classification.ConfidenceThreshold = 1.0
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil for threshold 1.0", err)
		}
	})

	t.Run("fails for non-positive word count threshold", func(t *testing.T) {
		cfg := validConfig()
		cfg.Complexity.WordCountThreshold = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero word count threshold")
		}
	})
}
