package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Mock store.
	StoreLatencyMS int `mapstructure:"STORE_LATENCY_MS"`

	// Key-value persistence: "memory", "bolt" or "redis".
	KVBackend string `mapstructure:"KV_BACKEND"`
	KVPath    string `mapstructure:"KV_PATH"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisKVDB     int    `mapstructure:"REDIS_KV_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking reminders.
	RemindersEnabled    bool `mapstructure:"REMINDERS_ENABLED"`
	ReminderLeadMinutes int  `mapstructure:"REMINDER_LEAD_MINUTES"`

	// IP geolocation lookup; %s is replaced by the client IP.
	GeoLookupURL       string `mapstructure:"GEO_LOOKUP_URL"`
	GeoLookupTimeoutMS int    `mapstructure:"GEO_LOOKUP_TIMEOUT_MS"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("STORE_LATENCY_MS", 120)
	viper.SetDefault("KV_BACKEND", "memory")
	viper.SetDefault("KV_PATH", "apna.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_KV_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("REMINDERS_ENABLED", false)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("GEO_LOOKUP_URL", "https://ipapi.co/%s/json/")
	viper.SetDefault("GEO_LOOKUP_TIMEOUT_MS", 7000)
}

func LoadConfig() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// StoreLatency is the simulated I/O delay applied by the mock store.
func (c Config) StoreLatency() time.Duration {
	if c.StoreLatencyMS <= 0 {
		return 0
	}
	return time.Duration(c.StoreLatencyMS) * time.Millisecond
}

// GeoLookupTimeout bounds how long a live position lookup may take.
func (c Config) GeoLookupTimeout() time.Duration {
	if c.GeoLookupTimeoutMS <= 0 {
		return 7 * time.Second
	}
	return time.Duration(c.GeoLookupTimeoutMS) * time.Millisecond
}

// ReminderLead is how long before a booking its reminder fires.
func (c Config) ReminderLead() time.Duration {
	return time.Duration(c.ReminderLeadMinutes) * time.Minute
}
