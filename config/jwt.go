package config

import (
	"os"
	"time"
)

// JWTSecret signs the session tokens issued on login. Override it with the
// JWT_SECRET environment variable outside local development.
var JWTSecret []byte

// JWTExpiration bounds how long an issued token stays valid.
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "newscheck-dev-secret-do-not-deploy"
	}
	JWTSecret = []byte(secret)

	JWTExpiration = 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRATION"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			JWTExpiration = parsed
		}
	}
}
