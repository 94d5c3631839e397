package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Calendar configuration.
	CalendarID      string `mapstructure:"CALENDAR_ID"`
	Timezone        string `mapstructure:"TIMEZONE"`
	SlotDurationMin int    `mapstructure:"SLOT_DURATION_MIN"`
	CredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`

	// How many days ahead next-free-slot searches may scan.
	SearchHorizonDays int `mapstructure:"SEARCH_HORIZON_DAYS"`

	// Weekly open/close table, weekday key ("mon".."sun") to "HH:MM-HH:MM".
	// A missing or empty entry means closed that day.
	WorkingHours map[string]string `mapstructure:"WORKING_HOURS"`
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
	viper.SetDefault("TIMEZONE", "Europe/Berlin")
	viper.SetDefault("SLOT_DURATION_MIN", 60)
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "service_account.json")
	viper.SetDefault("SEARCH_HORIZON_DAYS", 14)
	viper.SetDefault("WORKING_HOURS", map[string]string{
		"mon": "08:00-18:00",
		"tue": "08:00-18:00",
		"wed": "08:00-18:00",
		"thu": "08:00-18:00",
		"fri": "08:00-18:00",
		"sat": "10:00-14:00",
		"sun": "10:00-14:00",
	})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if AppConfig.CalendarID == "" {
		log.Fatalf("CALENDAR_ID must be configured")
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
