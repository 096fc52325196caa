package config

import "strconv"

// LogConfig holds logger settings
type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// LoadLogConfig loads logging configuration from environment variables
func LoadLogConfig(getenv func(string) string) LogConfig {
	config := LogConfig{
		Level:      valueOr(getenv("LOG_LEVEL"), "info"),
		Format:     valueOr(getenv("LOG_FORMAT"), "console"),
		File:       getenv("LOG_FILE"),
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
	if v, err := strconv.Atoi(getenv("LOG_MAX_SIZE_MB")); err == nil && v > 0 {
		config.MaxSizeMB = v
	}
	return config
}
