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
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Hourly rates by {weekday,weekend} x {day,night}.
	WeekdayDayRate   float64 `mapstructure:"WEEKDAY_DAY_RATE"`
	WeekdayNightRate float64 `mapstructure:"WEEKDAY_NIGHT_RATE"`
	WeekendDayRate   float64 `mapstructure:"WEEKEND_DAY_RATE"`
	WeekendNightRate float64 `mapstructure:"WEEKEND_NIGHT_RATE"`

	// Day-rate window and daily closure, minutes since midnight.
	DayWindowStartMin int `mapstructure:"DAY_WINDOW_START_MIN"`
	DayWindowEndMin   int `mapstructure:"DAY_WINDOW_END_MIN"`
	ClosedStartMin    int `mapstructure:"CLOSED_START_MIN"`
	ClosedEndMin      int `mapstructure:"CLOSED_END_MIN"`

	// Telegram admin notifications.
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `mapstructure:"TELEGRAM_CHAT_ID"`

	// Stripe payment links.
	StripeKey         string `mapstructure:"STRIPE_KEY"`
	PaymentCurrency   string `mapstructure:"PAYMENT_CURRENCY"`
	PaymentSuccessURL string `mapstructure:"PAYMENT_SUCCESS_URL"`
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
	viper.SetDefault("REDIS_CART_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("WEEKDAY_DAY_RATE", 600)
	viper.SetDefault("WEEKDAY_NIGHT_RATE", 1000)
	viper.SetDefault("WEEKEND_DAY_RATE", 600)
	viper.SetDefault("WEEKEND_NIGHT_RATE", 1100)
	viper.SetDefault("DAY_WINDOW_START_MIN", 6*60)
	viper.SetDefault("DAY_WINDOW_END_MIN", 18*60)
	viper.SetDefault("CLOSED_START_MIN", 2*60)
	viper.SetDefault("CLOSED_END_MIN", 5*60+30)
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", 0)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("PAYMENT_CURRENCY", "inr")
	viper.SetDefault("PAYMENT_SUCCESS_URL", "http://localhost:3000/?payment=success")

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
