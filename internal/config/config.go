package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment selects behaviour that differs between deployed and local stacks.
type Environment string

const (
	EnvProduction  Environment = "production"
	EnvDevelopment Environment = "development"
)

// ParseEnvironment maps APP_ENV to an Environment. Unset means production;
// any value other than "production" or "development" is rejected.
func ParseEnvironment(s string) (Environment, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", string(EnvProduction):
		return EnvProduction, nil
	case string(EnvDevelopment):
		return EnvDevelopment, nil
	default:
		return "", fmt.Errorf("APP_ENV %q: must be %q or %q", s, EnvProduction, EnvDevelopment)
	}
}

func (e Environment) IsProduction() bool { return e == EnvProduction }

// IsDevelopment reports whether development-only fallbacks may run. The zero
// value is not development.
func (e Environment) IsDevelopment() bool { return e == EnvDevelopment }

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  Environment

	AWSRegion       string
	AWSEndpointURL  string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID  string
	AWSSecretKey    string
	DynamoTables    DynamoTables
	BootstrapTables bool

	CognitoUserPoolID string
	RefreshGroups     bool          // re-read group membership from Cognito instead of trusting the token
	GroupCacheTTL     time.Duration // how long refreshed groups are reused; 0 disables caching
	OperatorGroup     string        // group allowed to read the subscription view

	JWTPublicKeyPath string
	JWTIssuer        string // optional; tokens from other issuers are rejected when set

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	AllowedOrigins      []string // CORS allowed origins
	CredentialRateLimit float64  // issuance requests per second per IP
	CredentialRateBurst int
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	EmailNotifications             string
	EmailNotificationSubscriptions string
	ClientCredentials              string
}

// Load reads all configuration from environment variables.
func Load() (*Config, error) {
	env, err := ParseEnvironment(os.Getenv("APP_ENV"))
	if err != nil {
		return nil, err
	}
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  env,

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			EmailNotifications:             getEnv("DYNAMO_TABLE_EMAIL_NOTIFICATIONS", "email_notification"),
			EmailNotificationSubscriptions: getEnv("DYNAMO_TABLE_EMAIL_NOTIFICATION_SUBSCRIPTIONS", "email_notification_subscription"),
			ClientCredentials:              getEnv("DYNAMO_TABLE_CLIENT_CREDENTIALS", "client_credentials"),
		},
		BootstrapTables: getEnvBool("DYNAMO_BOOTSTRAP", env.IsDevelopment()),

		CognitoUserPoolID: getEnv("COGNITO_USER_POOL_ID", ""),
		RefreshGroups:     getEnvBool("REFRESH_GROUPS", false),
		GroupCacheTTL:     getEnvDuration("GROUP_CACHE_TTL", time.Minute),
		OperatorGroup:     getEnv("OPERATOR_GROUP", "gcn.nasa.gov/gcn-admin"),

		JWTPublicKeyPath: getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTIssuer:        getEnv("JWT_ISSUER", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@gcn.nasa.gov"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		CredentialRateLimit: getEnvFloat("CREDENTIAL_RATE_LIMIT", 1),
		CredentialRateBurst: getEnvInt("CREDENTIAL_RATE_BURST", 5),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
