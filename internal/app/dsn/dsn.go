package dsn

import (
	"fmt"
	"os"
	"strings"
)

// FromEnv returns DATABASE_URL if it is set, otherwise a postgres DSN
// assembled from DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.
func FromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := getenv("DB_PORT", "5432")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	dbname := os.Getenv("DB_NAME")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}

// IsPostgres reports whether dsn points at postgres. Anything else is
// treated as a sqlite file path or URI.
func IsPostgres(dsn string) bool {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return true
	}
	return strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname=")
}

// SQLitePath strips the sqlite:// scheme diesel-style URLs carry.
func SQLitePath(dsn string) string {
	return strings.TrimPrefix(dsn, "sqlite://")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
