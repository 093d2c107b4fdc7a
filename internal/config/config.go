package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/binahub/building-service/internal/utils"
)

const AppName = "building-service"

type Config struct {
	AppName           string
	AppPort           string
	AppUrl            string
	DBUrl             string
	RSAPublicKey      *rsa.PublicKey
	SendgridAPIKey    string
	SendgridFromEmail string
	SeedTestData      bool
	CORSAllowLocalhost bool
}

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	pubB64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if pubB64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key PEM")
	}

	// Optional: invite-code delivery emails are skipped when unset.
	sendgridKey := os.Getenv("SENDGRID_API_KEY")
	sendgridFrom := os.Getenv("SENDGRID_FROM_EMAIL")
	if sendgridKey != "" && sendgridFrom == "" {
		utils.Logger.Fatal("SENDGRID_FROM_EMAIL required when SENDGRID_API_KEY is set")
	}

	return &Config{
		AppName:            AppName,
		AppPort:            appPort,
		AppUrl:             appUrl,
		DBUrl:              dbURL,
		RSAPublicKey:       publicKey,
		SendgridAPIKey:     sendgridKey,
		SendgridFromEmail:  sendgridFrom,
		SeedTestData:       os.Getenv("SEED_TEST_DATA") == "true",
		CORSAllowLocalhost: os.Getenv("CORS_ALLOW_LOCALHOST") == "true",
	}
}
