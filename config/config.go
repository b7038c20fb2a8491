package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB     int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// Booking configuration.
	PlatformFee      int `mapstructure:"PLATFORM_FEE"`
	BookingDateCount int `mapstructure:"BOOKING_DATE_COUNT"`

	// Payment configuration.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Push notification configuration.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Report storage configuration.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`
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

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	// Empty LOG_LEVEL keeps the per-environment logger default.
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "apexcare")
	viper.SetDefault("PLATFORM_FEE", 5)
	viper.SetDefault("BOOKING_DATE_COUNT", 10)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("CLOUDINARY_URL", "")

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
