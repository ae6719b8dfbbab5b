package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQuotaDB  int    `mapstructure:"REDIS_QUOTA_DB"`

	// Stripe Connect configuration.
	StripeKey        string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeRefreshURL string `mapstructure:"STRIPE_REFRESH_URL"`
	StripeReturnURL  string `mapstructure:"STRIPE_RETURN_URL"`

	// Twilio Verify configuration.
	TwilioAccountSID       string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken        string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioVerifyServiceSID string `mapstructure:"TWILIO_VERIFY_SERVICE_SID"`

	// Cloudinary configuration.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Resend configuration.
	ResendAPIKey    string `mapstructure:"RESEND_API_KEY"`
	ResendFromEmail string `mapstructure:"RESEND_FROM_EMAIL"`

	// Per-caller quotas for the phone verification steps.
	QuotaWindowMinutes int `mapstructure:"QUOTA_WINDOW_MINUTES"`
	QuotaPhoneLookups  int `mapstructure:"QUOTA_PHONE_LOOKUPS"`
	QuotaCodeSends     int `mapstructure:"QUOTA_CODE_SENDS"`
	QuotaCodeChecks    int `mapstructure:"QUOTA_CODE_CHECKS"`
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
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUOTA_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("STRIPE_REFRESH_URL", "http://localhost:3000/onboarding/payout/refresh")
	viper.SetDefault("STRIPE_RETURN_URL", "http://localhost:3000/onboarding/payout/return")
	viper.SetDefault("RESEND_FROM_EMAIL", "Orderly <hello@orderly.app>")
	viper.SetDefault("QUOTA_WINDOW_MINUTES", 10)
	viper.SetDefault("QUOTA_PHONE_LOOKUPS", 10)
	viper.SetDefault("QUOTA_CODE_SENDS", 5)
	viper.SetDefault("QUOTA_CODE_CHECKS", 8)

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
