package env

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var Env map[string]string

func GetEnv(key, def string) string {
	// Loaded .env values win over the process environment
	if val, ok := Env[key]; ok {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// GetInt returns the integer value of key, or def when unset or malformed
func GetInt(key string, def int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("env: %s=%q is not an integer, using %d", key, raw, def)
		return def
	}
	return val
}

// GetDuration parses values like "10s" or "5m". Bare integers are read as seconds.
func GetDuration(key string, def time.Duration) time.Duration {
	raw := GetEnv(key, "")
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("env: %s=%q is not a duration, using %s", key, raw, def)
		return def
	}
	return val
}

func SetupEnvFile() {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/klimatkollen to project root
		"../../../.env", // Fallback for deeper nesting
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			return
		}
	}

	// Containers pass configuration through the process environment
	Env = map[string]string{}
	log.Println("No .env file found, using process environment")
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
