package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the eyewear API.
type Config struct {
	Env         string // "development" or "production"
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	FrontendURL string

	// SMTP relay for transactional mail; optional, mail is disabled when unset.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	// Admin notification address for new appointments.
	AdminEmail string

	// S3 image hosting; optional, uploads are rejected when unset.
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3BaseURL   string
	AWSKeyID    string
	AWSSecret   string
}

// Load reads environment variables into a Config struct.
func Load() (*Config, error) {
	// .env is optional; system environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		Env:         os.Getenv("ENV"),
		Port:        os.Getenv("PORT"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     os.Getenv("MONGO_DB"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    os.Getenv("SMTP_PORT"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		MailFrom:    os.Getenv("MAIL_FROM"),
		AdminEmail:  os.Getenv("ADMIN_EMAIL"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("AWS_REGION"),
		S3Endpoint:  os.Getenv("AWS_ENDPOINT"),
		S3BaseURL:   os.Getenv("S3_BASE_URL"),
		AWSKeyID:    os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecret:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "hong-kong-db"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
