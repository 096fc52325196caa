package config

// ServerConfig holds settings for the report server
type ServerConfig struct {
	Port      string
	ReportDir string
}

// LoadServerConfig loads report server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	return ServerConfig{
		Port:      valueOr(getenv("PORT"), "8080"),
		ReportDir: valueOr(getenv("REPORT_DIR"), "reports/mochawesome"),
	}
}
