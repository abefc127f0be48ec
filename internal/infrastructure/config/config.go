// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Recipes   RecipesConfig   `mapstructure:"recipes"`
	AI        AIConfig        `mapstructure:"ai"`
	Nutrition NutritionConfig `mapstructure:"nutrition"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	EnableCORS      bool          `mapstructure:"enable_cors"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// StorageConfig selects and configures the durable key-value store.
type StorageConfig struct {
	// Driver is one of file, sqlite, memory.
	Driver string `mapstructure:"driver" validate:"oneof=file sqlite memory"`
	// Path is the data directory (file driver) or database file (sqlite).
	Path string `mapstructure:"path"`
}

// CacheConfig selects and configures the recipe search cache.
type CacheConfig struct {
	// Driver is one of memory, redis.
	Driver   string        `mapstructure:"driver" validate:"oneof=memory redis"`
	TTL      time.Duration `mapstructure:"ttl"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
}

// RecipesConfig configures the external recipe source.
type RecipesConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	// FallbackBaseURL points at the TheMealDB-compatible fallback; empty
	// disables it.
	FallbackBaseURL string        `mapstructure:"fallback_base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// AIConfig configures the language-model proxy.
type AIConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	Temperature       float64       `mapstructure:"temperature"`
	MaxTokens         int           `mapstructure:"max_tokens"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// NutritionConfig configures the estimator's reference values.
type NutritionConfig struct {
	DailyCalorieTarget float64 `mapstructure:"daily_calorie_target" validate:"gt=0"`
}

// Load reads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/mealforge")
	}

	v.SetEnvPrefix("MEALFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, the defaults carry a working setup
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Mealforge")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.enable_cors", true)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", "data")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.ttl", "15m")
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.db", 0)

	v.SetDefault("recipes.base_url", "https://api.spoonacular.com/recipes")
	v.SetDefault("recipes.fallback_base_url", "https://www.themealdb.com/api/json/v1/1")
	v.SetDefault("recipes.timeout", "15s")

	v.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.model", "meta-llama/llama-3.2-3b-instruct:free")
	v.SetDefault("ai.temperature", 0.8)
	v.SetDefault("ai.max_tokens", 2000)
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("ai.requests_per_minute", 20)

	v.SetDefault("nutrition.daily_calorie_target", 2000)
}
