package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	CORSAllowOrigin []string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string

	ExtractMode     string
	ExtractQueueURL string

	LLMProvider string
	LLMModel    string

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPPassword string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("CH_ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		DatabaseURL:     dbURL,
		CORSAllowOrigin: splitAndTrim(getEnv("CH_CORS_ORIGINS", "http://localhost:5173")),

		ObjectStoreType: normalizeStoreType(getEnv("CH_OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("CH_LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("CH_S3_BUCKET", ""),
		S3Prefix:        getEnv("CH_S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("CH_SSE_KMS_KEY_ID", ""),

		ExtractMode:     normalizeExtractMode(getEnv("CH_EXTRACT_MODE", "inline")),
		ExtractQueueURL: getEnv("CH_EXTRACT_QUEUE_URL", ""),

		LLMProvider: getEnv("CH_LLM_PROVIDER", "openai"),
		LLMModel:    getEnv("CH_LLM_MODEL", ""),

		SMTPHost:     getEnv("CH_SMTP_HOST", ""),
		SMTPPort:     getEnvInt("CH_SMTP_PORT", 587),
		SMTPFrom:     getEnv("CH_SMTP_FROM", ""),
		SMTPPassword: getEnv("CH_SMTP_PASSWORD", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("CH_UI_REDIRECT_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "s3") {
		return "s3"
	}
	return "local"
}

func normalizeExtractMode(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "queue") {
		return "queue"
	}
	return "inline"
}
