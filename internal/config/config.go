package config // config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field maps to an
// environment variable; required variables are enforced by must() and
// missing values halt startup.
type Config struct {
	Env            string // application environment (dev, prod)
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host
	DBPort         string // database port
	DBName         string // database name
	JWTSecret      string // secret used to sign access tokens
	JWTIssuer      string // issuer claim stamped on access tokens
	JWTAudience    string // audience claim stamped on access tokens
	AccessTTLSec   int    // access token time-to-live in seconds
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing

	// Sign-up role secrets. Presenting one of these at registration
	// selects the matching tier; anything else registers a plain USER.
	UserRoleSecret   string
	PosterRoleSecret string
	AdminRoleSecret  string
}

// Load reads configuration from the environment, exiting on missing
// required variables.
func Load() Config {
	return Config{
		Env:              must("APP_ENV"),
		Port:             must("APP_PORT"),
		DBUser:           must("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"),
		DBHost:           must("DB_HOST"),
		DBPort:           must("DB_PORT"),
		DBName:           must("DB_NAME"),
		JWTSecret:        must("JWT_SECRET"),
		JWTIssuer:        envStr("JWT_ISSUER", "tvshow-catalog"),
		JWTAudience:      envStr("JWT_AUDIENCE", "tvshow-catalog-api"),
		AccessTTLSec:     mustInt("ACCESS_TOKEN_TTL_SEC"),
		RefreshTTLDays:   mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:       mustInt("BCRYPT_COST"),
		UserRoleSecret:   must("ROLE_SECRET_USER"),
		PosterRoleSecret: must("ROLE_SECRET_POSTER"),
		AdminRoleSecret:  must("ROLE_SECRET_ADMIN"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value to an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
