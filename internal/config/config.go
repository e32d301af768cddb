package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/salaspot/rooms-service/internal/utils"
)

const AppName = "rooms-service"

// Config holds all application configuration.
type Config struct {
	AppName         string
	AppPort         string
	AppUrl          string
	DBUrl           string
	JWTSecret       string
	VerifySignature bool
	UploadDir       string
}

// LoadConfig reads the environment (optionally seeded from a .env file) and
// returns a *Config. Missing DB_URL is fatal; a missing JWT_SECRET is only
// logged here and surfaces as a 500 when a signed token is actually needed.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, relying on environment")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}

	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		appUrl = "http://localhost:" + appPort
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		utils.Logger.Warn("JWT_SECRET is not set; token verification will fail until it is configured")
	}

	verifySignature := true
	if raw := os.Getenv("JWT_VERIFY_SIGNATURE"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.Logger.Fatalf("JWT_VERIFY_SIGNATURE is not a boolean: %q", raw)
		}
		verifySignature = parsed
	}
	if !verifySignature {
		utils.Logger.Warn("JWT signature verification is DISABLED; never run this way in production")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	return &Config{
		AppName:         AppName,
		AppPort:         appPort,
		AppUrl:          appUrl,
		DBUrl:           dbUrl,
		JWTSecret:       secret,
		VerifySignature: verifySignature,
		UploadDir:       uploadDir,
	}
}
