package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port                      string
	Origin                    string
	Environment               string
	JWTSecret                 string
	JWTRefreshSecret          string
	JWTExpirationMinutes      int
	JWTRefreshExpirationHours int
	Database                  DatabaseConfig
	Clinic                    ClinicConfig
	Chat                      ChatConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// ClinicConfig holds the clinic's bookable hours.
type ClinicConfig struct {
	OpenHour       int
	CloseHour      int
	SlotMinutes    int
	ClosedWeekdays []time.Weekday
}

// ChatConfig holds the external AI assistant endpoint settings.
type ChatConfig struct {
	EndpointURL    string
	APIKey         string
	TimeoutSeconds int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "dental_clinic"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	jwtRefreshExpHours, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168")) // 7 days
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_HOURS: %w", err)
	}

	clinicConfig, err := loadClinicConfig()
	if err != nil {
		return nil, err
	}

	chatTimeout, err := strconv.Atoi(getEnv("CHAT_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_TIMEOUT_SECONDS: %w", err)
	}

	return &Config{
		Port:                      getEnv("PORT", "3001"),
		Origin:                    getEnv("ORIGIN", "http://localhost:4200"),
		Environment:               getEnv("APP_ENV", "development"),
		JWTSecret:                 getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTRefreshSecret:          getEnv("JWT_REFRESH_SECRET", "default_refresh_secret"),
		JWTExpirationMinutes:      jwtExpMinutes,
		JWTRefreshExpirationHours: jwtRefreshExpHours,
		Database:                  dbConfig,
		Clinic:                    clinicConfig,
		Chat: ChatConfig{
			EndpointURL:    getEnv("CHAT_ENDPOINT_URL", ""),
			APIKey:         getEnv("CHAT_API_KEY", ""),
			TimeoutSeconds: chatTimeout,
		},
	}, nil
}

func loadClinicConfig() (ClinicConfig, error) {
	openHour, err := strconv.Atoi(getEnv("CLINIC_OPEN_HOUR", "9"))
	if err != nil {
		return ClinicConfig{}, fmt.Errorf("invalid CLINIC_OPEN_HOUR: %w", err)
	}
	closeHour, err := strconv.Atoi(getEnv("CLINIC_CLOSE_HOUR", "18"))
	if err != nil {
		return ClinicConfig{}, fmt.Errorf("invalid CLINIC_CLOSE_HOUR: %w", err)
	}
	slotMinutes, err := strconv.Atoi(getEnv("CLINIC_SLOT_MINUTES", "30"))
	if err != nil {
		return ClinicConfig{}, fmt.Errorf("invalid CLINIC_SLOT_MINUTES: %w", err)
	}
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return ClinicConfig{}, fmt.Errorf("invalid clinic hours %d-%d", openHour, closeHour)
	}
	if slotMinutes <= 0 {
		return ClinicConfig{}, fmt.Errorf("invalid CLINIC_SLOT_MINUTES: must be positive")
	}

	// Comma-separated weekday numbers, 0 = Sunday.
	var closed []time.Weekday
	for _, part := range strings.Split(getEnv("CLINIC_CLOSED_WEEKDAYS", "0"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := strconv.Atoi(part)
		if err != nil || day < 0 || day > 6 {
			return ClinicConfig{}, fmt.Errorf("invalid CLINIC_CLOSED_WEEKDAYS entry %q", part)
		}
		closed = append(closed, time.Weekday(day))
	}

	return ClinicConfig{
		OpenHour:       openHour,
		CloseHour:      closeHour,
		SlotMinutes:    slotMinutes,
		ClosedWeekdays: closed,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
