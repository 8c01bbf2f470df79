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

	// Campus defaults.
	CampusEmailDomain string  `mapstructure:"CAMPUS_EMAIL_DOMAIN"`
	DefaultCapacity   int     `mapstructure:"DEFAULT_COURSE_CAPACITY"`
	DefaultHourlyRate float64 `mapstructure:"DEFAULT_HOURLY_RATE"`
	MaxClassMinutes   int     `mapstructure:"MAX_CLASS_MINUTES"`
	DefaultSemester   string  `mapstructure:"DEFAULT_SEMESTER"`
	DefaultCourseFee  float64 `mapstructure:"DEFAULT_COURSE_FEE"`
	AssignmentsWeight float64 `mapstructure:"ASSIGNMENTS_WEIGHT"`
	ExamWeight        float64 `mapstructure:"EXAM_WEIGHT"`
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
	viper.SetDefault("CAMPUS_EMAIL_DOMAIN", "picos.edu")
	viper.SetDefault("DEFAULT_COURSE_CAPACITY", 30)
	viper.SetDefault("DEFAULT_HOURLY_RATE", 500)
	viper.SetDefault("MAX_CLASS_MINUTES", 180)
	viper.SetDefault("DEFAULT_SEMESTER", "2024A")
	viper.SetDefault("DEFAULT_COURSE_FEE", 50000)
	viper.SetDefault("ASSIGNMENTS_WEIGHT", 0.3)
	viper.SetDefault("EXAM_WEIGHT", 0.7)

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
