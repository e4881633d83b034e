package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	Environment string   `mapstructure:"environment"` // "development" or "production"
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// MemoryDatabaseURI keeps all data in process memory instead of MongoDB.
const MemoryDatabaseURI = "memory://"

// InMemory reports whether the server should run without MongoDB.
func (d DatabaseConfig) InMemory() bool {
	return strings.EqualFold(strings.TrimSpace(d.URI), MemoryDatabaseURI)
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// Plan source names accepted by PlannerConfig.Source.
const (
	PlannerSourceAlgorithmic = "algorithmic"
	PlannerSourceGenerative  = "generative"
)

// PlannerConfig selects the plan source and, optionally, pins the random
// seed used for food selection (0 means seed from the clock on every call).
type PlannerConfig struct {
	Source string `mapstructure:"source"`
	Seed   int64  `mapstructure:"seed"`
}

// LLMConfig configures the generative plan source.
type LLMConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, llm.api_key -> LLM_API_KEY
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// Keys without a default are invisible to Unmarshal unless bound explicitly.
	for _, key := range []string{
		"jwt.secret",
		"s3.endpoint", "s3.region", "s3.access_key_id", "s3.secret_access_key", "s3.bucket_name",
		"llm.api_key",
	} {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_planner")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.expiration", "1h")
	v.SetDefault("planner.source", PlannerSourceAlgorithmic)
	v.SetDefault("planner.seed", 0)
	v.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("llm.model", "gemini-2.0-flash")
	v.SetDefault("llm.timeout", "60s")

	err = v.ReadInConfig()
	// A missing config file is fine, env vars and defaults still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	// CORS origins may arrive as a single comma separated env var.
	if len(config.Server.CORSOrigins) == 1 && strings.Contains(config.Server.CORSOrigins[0], ",") {
		config.Server.CORSOrigins = splitAndTrim(config.Server.CORSOrigins[0])
	}
	config.Planner.Source = strings.ToLower(strings.TrimSpace(config.Planner.Source))

	return config, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
