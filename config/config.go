package config

import "os"

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "meal_planner_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath returns the sqlite database file backing the table store.
func DBPath() string {
	return getEnv("DB_PATH", "meal_planner.db")
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}
