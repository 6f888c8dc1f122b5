// Package config handles runtime settings for lxfetch. Settings come from
// the environment only; there is no configuration file.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"lxfetch/sysinfo"
)

// Config holds all lxfetch settings.
type Config struct {
	LogLevel       string        // "debug", "info", "warn", "error"
	ConfigDir      string        // where gtk-3.0/settings.ini is looked up
	CommandTimeout time.Duration // per package manager query
}

// Load reads configuration from environment variables.
func Load() *Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv.
func LoadFrom(getenv func(string) string) *Config {
	level := getenv("XFETCH_LOG_LEVEL")
	if getenv("XFETCH_DEBUG") != "" {
		level = "debug"
	}
	if level == "" {
		level = "warn"
	}

	timeout := sysinfo.DefaultCommandTimeout
	if v := getenv("XFETCH_CMD_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return &Config{
		LogLevel:       level,
		ConfigDir:      configDir(getenv),
		CommandTimeout: timeout,
	}
}

// configDir follows the XDG base directory spec.
func configDir(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return ""
}
