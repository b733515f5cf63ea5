package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server         ServerConfig
	LLM            LLMConfig
	Mongo          MongoConfig
	Batch          BatchConfig
	Complexity     ComplexityConfig
	Classification ClassificationConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMConfig holds configuration for the model-assisted tier. An empty API
// key is valid: the pipeline then runs in pattern-only mode.
type LLMConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// MongoConfig holds product store configuration
type MongoConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

// BatchConfig holds batch processing configuration
type BatchConfig struct {
	Workers       int    `mapstructure:"workers"`
	DataDirectory string `mapstructure:"data_directory"`
	Currency      string `mapstructure:"currency"`
}

// ComplexityConfig holds the routing thresholds for the extraction tier
type ComplexityConfig struct {
	WordCountThreshold int      `mapstructure:"word_count_threshold"`
	LengthThreshold    int      `mapstructure:"length_threshold"`
	SpecialChars       string   `mapstructure:"special_chars"`
	Keywords           []string `mapstructure:"keywords"`
}

// ClassificationConfig holds the escalation threshold for the classifier
type ClassificationConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricepulse/")

	// Environment variable settings
	v.SetEnvPrefix("PRICEPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// LLM defaults (no api_key default: pattern-only mode unless configured)
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.model", "llama-3.1-8b-instant")
	v.SetDefault("llm.timeout", "30s")
	// Free-tier Groq allows 30 requests/minute
	v.SetDefault("llm.requests_per_second", 0.5)
	v.SetDefault("llm.burst", 5)

	// Mongo defaults
	v.SetDefault("mongo.enabled", true)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "pricepulse")
	v.SetDefault("mongo.collection", "products")

	// Batch defaults
	v.SetDefault("batch.workers", 8)
	v.SetDefault("batch.data_directory", "data")
	v.SetDefault("batch.currency", "SAR")

	// Complexity routing defaults
	v.SetDefault("complexity.word_count_threshold", 5)
	v.SetDefault("complexity.length_threshold", 50)
	v.SetDefault("complexity.special_chars", "-/&()")
	v.SetDefault("complexity.keywords", []string{
		"organic", "premium", "fresh", "natural", "sustainable",
		"fair-trade", "quality", "grade", "type", "variety", "brand",
	})

	// Classification defaults
	v.SetDefault("classification.confidence_threshold", 0.85)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Mongo.Enabled && config.Mongo.URI == "" {
		return fmt.Errorf("Mongo URI is required when mongo is enabled")
	}

	if config.LLM.RequestsPerSecond <= 0 {
		return fmt.Errorf("llm requests per second must be positive, got: %v", config.LLM.RequestsPerSecond)
	}

	if config.Batch.Workers < 1 {
		return fmt.Errorf("batch workers must be at least 1, got: %d", config.Batch.Workers)
	}

	t := config.Classification.ConfidenceThreshold
	if t <= 0 || t > 1 {
		return fmt.Errorf("classification confidence threshold must be in (0,1], got: %v", t)
	}

	if config.Complexity.WordCountThreshold < 1 {
		return fmt.Errorf("complexity word count threshold must be at least 1, got: %d", config.Complexity.WordCountThreshold)
	}

	return nil
}
