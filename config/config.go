package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port              string
	GinMode           string
	CORSOrigins       []string
	JWTSecret         string
	JWTExpiry         time.Duration
	OwnerEmail        string
	OwnerPasswordHash string
	SeedSampleData    bool
	DatabaseURL       string
	ReminderSchedule  string
	SlowRequest       time.Duration
	Twilio            TwilioConfig
}

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	PhoneNumber    string
	WhatsAppNumber string
}

func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && (t.PhoneNumber != "" || t.WhatsAppNumber != "")
}

// AuthEnabled reports whether the API requires an owner token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           os.Getenv("GIN_MODE"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTExpiry:         time.Duration(getInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		OwnerEmail:        os.Getenv("OWNER_EMAIL"),
		OwnerPasswordHash: os.Getenv("OWNER_PASSWORD_HASH"),
		SeedSampleData:    getBool("SEED_SAMPLE_DATA", true),
		DatabaseURL:       os.Getenv("DB_URL"),
		ReminderSchedule:  getEnv("REMINDER_SCHEDULE", "0 9 * * *"),
		SlowRequest:       time.Duration(getInt("SLOW_REQUEST_MS", 200)) * time.Millisecond,
		Twilio: TwilioConfig{
			AccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
			PhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
			WhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid %s=%q, using %t", key, v, fallback)
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
