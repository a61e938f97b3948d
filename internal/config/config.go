package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServerPort string

	// Credenciais fixas do painel. Placeholder assumido: par literal,
	// sem hash e sem sessão (ver auth.StaticVerifier).
	AdminUser string
	AdminPass string

	Timezone string

	OpenHour          int
	CloseHour         int
	BookingWindowDays int
	MinAdvanceMinutes int

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		AdminUser: getEnv("ADMIN_USER", "adm1"),
		AdminPass: getEnv("ADMIN_PASS", "0000"),

		Timezone: getEnv("TIMEZONE", "America/Sao_Paulo"),

		OpenHour:          getEnvInt("OPEN_HOUR", 9),
		CloseHour:         getEnvInt("CLOSE_HOUR", 21),
		BookingWindowDays: getEnvInt("BOOKING_WINDOW_DAYS", 7),
		MinAdvanceMinutes: getEnvInt("MIN_ADVANCE_MINUTES", 15),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
