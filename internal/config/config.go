package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything chalk needs to reach the school API.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	PageSize       int
	LogFile        string
}

const (
	defaultConfigPath = "~/.config/chalk/config.toml"
	defaultAPIURL     = "http://127.0.0.1:8080"
	defaultTimeout    = 10 * time.Second
	defaultPageSize   = 20
)

// Load locates and parses the config file, then applies .env and
// environment overrides (CHALK_API_URL, CHALK_TIMEOUT_SECONDS,
// CHALK_PAGE_SIZE, CHALK_LOG_FILE). Missing files fall back to defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultTimeout,
		PageSize:       defaultPageSize,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		TimeoutSeconds int    `toml:"request_timeout_seconds"`
		PageSize       int    `toml:"page_size"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.APIURL); url != "" {
		cfg.APIURL = url
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return applyEnv(cfg), nil
}

// applyEnv layers .env and process environment values over cfg. A .env
// in the working directory is optional and never an error.
func applyEnv(cfg Config) Config {
	_ = godotenv.Load()

	if url := strings.TrimSpace(os.Getenv("CHALK_API_URL")); url != "" {
		cfg.APIURL = url
	}
	if raw := strings.TrimSpace(os.Getenv("CHALK_TIMEOUT_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if raw := strings.TrimSpace(os.Getenv("CHALK_PAGE_SIZE")); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			cfg.PageSize = size
		}
	}
	if logFile := strings.TrimSpace(os.Getenv("CHALK_LOG_FILE")); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
