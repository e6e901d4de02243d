package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const minJWTSecretLength = 16

type Env struct {
	AppAddr        string
	GinMode        string
	LogLevel       string
	RequestTimeout time.Duration

	DBDSN      string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	JWTSecret      string
	AllowedOrigins []string

	RedisAddr string
	CacheTTL  time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string
	MailBrand    string

	AdminEmail    string
	AdminPassword string
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:        envString("APP_ADDR", ":8080"),
		GinMode:        envString("GIN_MODE", ""),
		LogLevel:       envString("LOG_LEVEL", "info"),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 15*time.Second),

		DBDSN:      envString("DB_DSN", ""),
		DBUser:     envString("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     envString("DB_HOST", "127.0.0.1:3306"),
		DBName:     envString("DB_NAME", "travel_backoffice"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", nil),

		RedisAddr: envString("REDIS_ADDR", ""),
		CacheTTL:  envDuration("CACHE_TTL", 5*time.Minute),

		KafkaBrokers: envList("KAFKA_BROKERS", nil),
		KafkaTopic:   envString("KAFKA_TOPIC", "travel.orders"),

		SMTPHost:     envString("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPEmail:    envString("SMTP_EMAIL", ""),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailBrand:    envString("MAIL_BRAND", "Cloudship Holidays"),

		AdminEmail:    envString("ADMIN_EMAIL", ""),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

// Validate rejects configurations that would leave the admin API open.
// JWT_SECRET is always required; release mode also needs an explicit
// CORS_ALLOWED_ORIGINS list.
func (e Env) Validate() error {
	if len(strings.TrimSpace(e.JWTSecret)) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be set to at least %d characters", minJWTSecretLength)
	}
	if e.GinMode == gin.ReleaseMode && len(e.AllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must be set in release mode")
	}
	return nil
}

func envString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// envDuration accepts Go durations ("5s") or plain seconds ("5").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
