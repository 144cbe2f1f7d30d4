// path: config/config.go
package config

import (
	"os"
	"strings"
)

// Config carries everything the process needs; it is loaded once in main and
// passed explicitly, never read from package globals.
type Config struct {
	Addr        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	UploadDir   string
	CORSOrigins string
}

// Load reads configuration from the environment with dev-friendly defaults.
func Load() Config {
	return Config{
		Addr:        getenv("ADDR", ":8080"),
		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getenv("MONGO_DB", "civicfix"),
		JWTSecret:   getenv("JWT_SECRET", "change-me-in-production"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
		CORSOrigins: getenv("CORS_ORIGINS", "*"),
	}
}

// getenv returns the trimmed env var value or a default.
func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
