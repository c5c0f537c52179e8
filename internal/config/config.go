package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	// Единственный разрешённый origin для CORS (фронтенд).
	AllowedOrigin string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		AllowedOrigin: def(os.Getenv("ALLOWED_ORIGIN"), "http://localhost"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if c.AllowedOrigin == "" {
		warnings = append(warnings, "ALLOWED_ORIGIN is empty, CORS will reject the frontend")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
