// Package config provides bot configuration with support for environment
// variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Bot      BotConfig
	Database DatabaseConfig
	Feedback FeedbackConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// BotConfig holds the Telegram bot settings.
type BotConfig struct {
	// Token authenticates against the Bot API. Required outside tests.
	Token string
	// AdminIDs is the static admin allowlist from configuration. The
	// database-backed set extends it at runtime; this one is always trusted.
	AdminIDs []int64
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string
}

// FeedbackConfig throttles feedback intake per user.
type FeedbackConfig struct {
	// RPS is the sustained submissions-per-second allowance per user.
	RPS float64
	// Burst is the number of submissions a user may send back to back.
	Burst int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	botToken := flag.String("bot-token", "", "Telegram bot API token")
	admins := flag.String("admins", "", "Comma-separated admin user ids")
	dbPath := flag.String("db-path", "", "Path to the SQLite database file")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	feedbackRPS := flag.String("feedback-rps", "", "Per-user feedback submissions per second (default: 0.2)")
	feedbackBurst := flag.String("feedback-burst", "", "Per-user feedback burst size (default: 3)")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Bot: BotConfig{
			Token:    getConfigValue(*botToken, "BOT_TOKEN", ""),
			AdminIDs: ParseAdminIDs(getConfigValue(*admins, "ADMINS", "")),
		},
		Database: DatabaseConfig{
			Path: getConfigValue(*dbPath, "DB_PATH", "bot.db"),
		},
		Feedback: FeedbackConfig{
			RPS:   getFloatConfigValue(*feedbackRPS, "FEEDBACK_RPS", 0.2),
			Burst: getIntConfigValue(*feedbackBurst, "FEEDBACK_BURST", 3),
		},
	}

	if err := cfg.expandDatabasePath(); err != nil {
		return nil, fmt.Errorf("invalid database path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Bot.Token == "" {
		return errors.New("BOT_TOKEN is required")
	}

	if c.Database.Path == "" {
		return errors.New("database path cannot be empty after expansion")
	}

	if c.Feedback.RPS <= 0 {
		return fmt.Errorf("feedback rps must be positive, got %v", c.Feedback.RPS)
	}
	if c.Feedback.Burst < 1 {
		return fmt.Errorf("feedback burst must be at least 1, got %d", c.Feedback.Burst)
	}

	return nil
}

// ParseAdminIDs parses a comma-separated list of user ids. Blank entries and
// entries that do not parse as integers are skipped, so one bad token in the
// environment never locks every admin out.
func ParseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// expandDatabasePath expands ~ and makes the path absolute.
func (c *Config) expandDatabasePath() error {
	path := c.Database.Path
	if path == "" {
		return nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	c.Database.Path = filepath.Clean(path)
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float64 from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Env vars take precedence over the .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
