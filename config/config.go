package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Game identifies one tracked title on the partner portal
type Game struct {
	AppID int64
	Name  string
}

// Config represents the application configuration
type Config struct {
	// MySQL configuration
	MySQLDSN string

	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Portal configuration
	PortalBaseURL string
	SnapshotDir   string

	// Scrape configuration
	ScrapeInterval time.Duration
	StatTimezone   string
	Games          []Game

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	scrapeInterval, _ := strconv.Atoi(getEnv("SCRAPE_INTERVAL_SECONDS", "86400"))

	return &Config{
		MySQLDSN:             getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/partnerstats?charset=utf8mb4&parseTime=True&loc=UTC"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "dailymetrics"),
		RedisStreamMaxLength: streamMaxLen,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		PortalBaseURL:        getEnv("PORTAL_BASE_URL", "https://partner.steamgames.com"),
		SnapshotDir:          getEnv("SNAPSHOT_DIR", ""),
		ScrapeInterval:       time.Duration(scrapeInterval) * time.Second,
		StatTimezone:         getEnv("STAT_TIMEZONE", "America/Los_Angeles"),
		Games:                parseGames(getEnv("GAMES", "2507950:Delta Force,2073620:Arena Breakout: Infinite,3478050:Road to Empress,3104410:Terminull Brigade")),
		Environment:          getEnv("PARTNERSTATS_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.MySQLDSN == "" {
		return fmt.Errorf("MYSQL_DSN must not be empty")
	}
	if len(c.Games) == 0 {
		return fmt.Errorf("GAMES must list at least one app_id:name entry")
	}
	if c.ScrapeInterval <= 0 {
		return fmt.Errorf("SCRAPE_INTERVAL_SECONDS must be positive")
	}
	if _, err := time.LoadLocation(c.StatTimezone); err != nil {
		return fmt.Errorf("invalid STAT_TIMEZONE %q: %w", c.StatTimezone, err)
	}
	return nil
}

// parseGames parses a "appID:name,appID:name" list. Entries without a
// numeric app id are dropped. Names may themselves contain colons.
func parseGames(raw string) []Game {
	var games []Game
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idStr, name, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		appID, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err != nil {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		games = append(games, Game{AppID: appID, Name: name})
	}
	return games
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
