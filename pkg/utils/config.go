package utils

import (
	"os"
	"strconv"
	"time"
)

type ScraperConfig struct {
	BaseURL      string
	UserAgent    string
	FetchTimeout time.Duration
	FetchDelay   time.Duration // politeness delay after every fetch
	BulkDelay    time.Duration // extra delay between bulk items
}

type ServerConfig struct {
	HTTPAddr  string
	TCPAddr   string
	Keepalive time.Duration // SSE keepalive interval
}

func LoadScraperConfig() ScraperConfig {
	return ScraperConfig{
		BaseURL:      envString("PHONEHUB_BASE_URL", "https://www.gsmarena.com"),
		UserAgent:    envString("PHONEHUB_USER_AGENT", "Mozilla/5.0 (compatible; PhoneSpecsBot/1.0)"),
		FetchTimeout: envMillis("PHONEHUB_FETCH_TIMEOUT_MS", 15*time.Second),
		FetchDelay:   envMillis("PHONEHUB_DELAY_MS", 800*time.Millisecond),
		BulkDelay:    envMillis("PHONEHUB_BULK_DELAY_MS", 1200*time.Millisecond),
	}
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		HTTPAddr:  envString("PHONEHUB_HTTP_ADDR", ":8080"),
		TCPAddr:   envString("PHONEHUB_TCP_ADDR", ":7070"),
		Keepalive: envMillis("PHONEHUB_KEEPALIVE_MS", 25*time.Second),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envMillis reads a millisecond count; on a missing or bad value it falls
// back to the default.
func envMillis(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
