package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	// ScanInterval drives the in-process due-reminder loop; 0 disables it
	// (scans then only happen via POST /scan).
	ScanInterval time.Duration

	// ScanSecret, when set, is required in the X-Scan-Secret header of
	// POST /scan requests.
	ScanSecret string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioAPIURL     string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		ScanSecret:           getenv("SCAN_SECRET", ""),
		TwilioAccountSID:     getenv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:      getenv("TWILIO_AUTH_TOKEN", ""),
		TwilioFrom:           getenv("TWILIO_FROM", ""),
		TwilioAPIURL:         getenv("TWILIO_API_URL", ""),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	interval := getenv("SCAN_INTERVAL", "1m")
	d, err := time.ParseDuration(interval)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SCAN_INTERVAL %q: %w", interval, err)
	}
	cfg.ScanInterval = d

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
