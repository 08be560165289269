package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Target site
	BaseURL    string
	Categories []string
	TargetYear int

	// Acquisition bounds
	MaxPages          int
	MaxReviewProducts int
	RequestTimeout    time.Duration

	// Credentials attached as static headers
	SecretToken string // testimonials step-up header
	CSRFToken   string // reviews API header

	// Politeness
	RespectRobots bool
	DelayProfile  string // "cautious", "normal", "aggressive"
	RatePerSecond float64
	RateBurst     int
	ProxyURL      string

	// Output
	OutputFile string

	// MCP HTTP server
	HTTPPort string
	APIKey   string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "https://web-scraping.dev",
		Categories:        []string{"apparel", "consumables"},
		TargetYear:        2023,
		MaxPages:          200,
		MaxReviewProducts: 60,
		RequestTimeout:    25 * time.Second,
		SecretToken:       "secret123",
		CSRFToken:         "secret-csrf-token-123",
		RespectRobots:     true,
		DelayProfile:      "normal",
		RatePerSecond:     4.0,
		RateBurst:         2,
		OutputFile:        "data.json",
		HTTPPort:          "8080",
	}
}

// LoadFromEnv loads .env (if present) then overrides config from
// environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("BRANDMON_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("BRANDMON_CATEGORIES"); v != "" {
		c.Categories = splitList(v)
	}
	if v := os.Getenv("BRANDMON_TARGET_YEAR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TargetYear = n
		}
	}
	if v := os.Getenv("BRANDMON_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPages = n
		}
	}
	if v := os.Getenv("BRANDMON_MAX_REVIEW_PRODUCTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxReviewProducts = n
		}
	}
	if v := os.Getenv("BRANDMON_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("BRANDMON_SECRET_TOKEN"); v != "" {
		c.SecretToken = v
	}
	if v := os.Getenv("BRANDMON_CSRF_TOKEN"); v != "" {
		c.CSRFToken = v
	}
	if v := os.Getenv("BRANDMON_RESPECT_ROBOTS"); v == "false" {
		c.RespectRobots = false
	}
	if v := os.Getenv("BRANDMON_DELAY_PROFILE"); v != "" {
		c.DelayProfile = v
	}
	if v := os.Getenv("BRANDMON_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("BRANDMON_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("BRANDMON_PROXY_URL"); v != "" {
		c.ProxyURL = v
	}
	if v := os.Getenv("BRANDMON_OUTPUT"); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("BRANDMON_API_KEY"); v != "" {
		c.APIKey = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
