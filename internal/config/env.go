package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// LoadDotEnv loads the first existing file from paths into the environment.
// Variables already set are left alone. It returns the file it loaded, or ""
// when none exist.
func LoadDotEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return path, godotenv.Load(path)
	}
	return "", nil
}

func lookupEnv(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

func envOrDefault(key, defaultValue string) string {
	if raw, ok := lookupEnv(key); ok {
		return raw
	}
	return defaultValue
}

// parsedEnvOrDefault parses key with parse and keeps the result only when it
// parses cleanly and passes accept.
func parsedEnvOrDefault[T any](key string, defaultValue T, parse func(string) (T, error), accept func(T) bool) T {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	val, err := parse(raw)
	if err != nil || (accept != nil && !accept(val)) {
		return defaultValue
	}
	return val
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return parsedEnvOrDefault(key, defaultValue, time.ParseDuration, func(d time.Duration) bool { return d > 0 })
}

func intEnvOrDefault(key string, defaultValue int) int {
	return parsedEnvOrDefault(key, defaultValue, strconv.Atoi, func(n int) bool { return n > 0 })
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	return parsedEnvOrDefault(key, defaultValue, parseFlag, nil)
}

// parseFlag accepts the strconv.ParseBool forms plus yes and no.
func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(raw)
}
