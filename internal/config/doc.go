// Package config loads chalk's settings from ~/.config/chalk/config.toml
// with .env and environment overrides layered on top.
package config
