package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/mcdev12/rosterbook/go/internal/matches"
	"github.com/mcdev12/rosterbook/go/internal/stats"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Query struct {
		MatchPageSize  int `yaml:"match_page_size"`
		StatsBatchSize int `yaml:"stats_batch_size"`
	} `yaml:"query"`
	Server struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
}

func defaultConfig() *Config {
	var config Config
	config.Query.MatchPageSize = matches.DefaultPageSize
	config.Query.StatsBatchSize = stats.DefaultBatchSize
	config.Server.Port = "8080"
	config.Server.AllowedOrigins = []string{"*"}
	return &config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path over the defaults. A missing file is not an error.
// PORT, MATCH_PAGE_SIZE, STATS_BATCH_SIZE and ALLOWED_ORIGINS override the file.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Query.MatchPageSize = getEnvAsInt("MATCH_PAGE_SIZE", config.Query.MatchPageSize)
	config.Query.StatsBatchSize = getEnvAsInt("STATS_BATCH_SIZE", config.Query.StatsBatchSize)
	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		config.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	if config.Query.MatchPageSize <= 0 {
		return nil, fmt.Errorf("query.match_page_size must be positive, got %d", config.Query.MatchPageSize)
	}
	if config.Query.StatsBatchSize <= 0 {
		return nil, fmt.Errorf("query.stats_batch_size must be positive, got %d", config.Query.StatsBatchSize)
	}
	return config, nil
}
