package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`
	RedisAIDB     int    `mapstructure:"REDIS_AI_DB"`

	// Storage backends: "memory" or "redis" for the cart and chat history, "static" or "mongo" for the catalog.
	CartStore      string `mapstructure:"CART_STORE"`
	AIContextStore string `mapstructure:"AI_CONTEXT_STORE"`
	CatalogSource  string `mapstructure:"CATALOG_SOURCE"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabaseName   string `mapstructure:"DATABASE_NAME"`

	// Gemini assistant.
	GeminiAPIKey string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string        `mapstructure:"GEMINI_MODEL"`
	AIContextTTL time.Duration `mapstructure:"AI_CONTEXT_TTL"`

	// Simulated latencies.
	ReminderDelay        time.Duration `mapstructure:"REMINDER_DELAY"`
	PaymentDelay         time.Duration `mapstructure:"PAYMENT_DELAY"`
	AmbulanceSearchDelay time.Duration `mapstructure:"AMBULANCE_SEARCH_DELAY"`

	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CART_DB", 0)
	v.SetDefault("REDIS_AI_DB", 1)
	v.SetDefault("CART_STORE", "memory")
	v.SetDefault("AI_CONTEXT_STORE", "memory")
	v.SetDefault("CATALOG_SOURCE", "static")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "drepto")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-flash-lite-latest")
	v.SetDefault("AI_CONTEXT_TTL", "30m")
	v.SetDefault("REMINDER_DELAY", "1500ms")
	v.SetDefault("PAYMENT_DELAY", "1500ms")
	v.SetDefault("AMBULANCE_SEARCH_DELAY", "3s")
	v.SetDefault("SESSION_TTL", "2h")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
