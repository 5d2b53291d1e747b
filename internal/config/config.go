package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"

	SessionStoreFile     = "file"
	SessionStoreMinIO    = "minio"
	SessionStorePostgres = "postgres"
	SessionStoreMemory   = "memory"
)

type Config struct {
	Port            string
	AllowOrigins    []string
	LogLevel        string
	LogstashTCPAddr string

	CatalogSource string
	DatabaseURL   string

	SessionStore      string
	SessionStorePath  string
	SessionStorageKey string
	LoginRoute        string

	MinIOEndpoint       string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOUseSSL         bool
	MinIOBucketSessions string
	MinIOPublicURL      string

	SwaggerSpecPath string
	EnableSwagger   bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := Config{
		Port:              getenv("PORT", "8080"),
		AllowOrigins:      splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:          strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogstashTCPAddr:   getenv("LOGSTASH_TCP_ADDR", ""),
		CatalogSource:     strings.ToLower(getenv("CATALOG_SOURCE", CatalogSourceMemory)),
		SessionStore:      strings.ToLower(getenv("SESSION_STORE", SessionStoreFile)),
		SessionStorePath:  getenv("SESSION_STORE_PATH", ".data/local_storage.json"),
		SessionStorageKey: getenv("SESSION_STORAGE_KEY", "user"),
		LoginRoute:        getenv("LOGIN_ROUTE", "/login"),
		MinIOUseSSL:       getenv("MINIO_USE_SSL", "false") == "true",
		MinIOPublicURL:    getenv("MINIO_PUBLIC_URL", ""),
		SwaggerSpecPath:   getenv("SWAGGER_SPEC_PATH", "docs/swagger.yaml"),
		EnableSwagger:     getenv("ENABLE_SWAGGER", "true") == "true",
	}

	if cfg.UsesPostgres() {
		cfg.DatabaseURL = must("DATABASE_URL")
	} else {
		cfg.DatabaseURL = getenv("DATABASE_URL", "")
	}

	if cfg.SessionStore == SessionStoreMinIO {
		cfg.MinIOEndpoint = must("MINIO_ENDPOINT")
		cfg.MinIOAccessKey = must("MINIO_ACCESS_KEY")
		cfg.MinIOSecretKey = must("MINIO_SECRET_KEY")
		cfg.MinIOBucketSessions = getenv("MINIO_BUCKET_SESSIONS", "visitegypt-sessions")
	}

	return cfg
}

// Validate rejects unknown backend names so a typo fails start-up instead of
// silently selecting a default.
func (c Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceMemory, CatalogSourcePostgres:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	switch c.SessionStore {
	case SessionStoreFile, SessionStoreMinIO, SessionStorePostgres, SessionStoreMemory:
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}
	return nil
}

// UsesPostgres reports whether any configured component needs DATABASE_URL.
func (c Config) UsesPostgres() bool {
	return c.CatalogSource == CatalogSourcePostgres || c.SessionStore == SessionStorePostgres
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
