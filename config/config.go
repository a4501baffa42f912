// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: User settings loaded from the scrollsh config directory.

// Package config loads scrollsh settings from a JSON file under the
// user config directory. Load never fails: problems are logged and
// answered with defaults, and a default file is written on first run.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

const configName = "scrollsh.json"

// Config holds the user-tunable settings. Zero or missing fields are
// filled with defaults on load.
type Config struct {
	// HistoryPath is the SQLite command-history database location.
	HistoryPath string `json:"history_path"`
	// HistoryLimit caps how many stored commands are preloaded for recall.
	HistoryLimit int `json:"history_limit"`
	// SyntaxStyle names the chroma style used for the input line.
	SyntaxStyle string `json:"syntax_style"`
	// PollTimeoutMs bounds each wait for the next key event.
	PollTimeoutMs int `json:"poll_timeout_ms"`
}

// Root returns the scrollsh config directory.
func Root() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scrollsh"), nil
}

func defaults(dir string) Config {
	return Config{
		HistoryPath:   filepath.Join(dir, "history.db"),
		HistoryLimit:  500,
		SyntaxStyle:   "catppuccin-mocha",
		PollTimeoutMs: 100,
	}
}

// Load reads the config file, writing a default one on first run.
func Load() Config {
	dir, err := Root()
	if err != nil {
		log.Printf("Config: failed to resolve config dir: %v", err)
		return defaults(".")
	}
	return loadDir(dir)
}

func loadDir(dir string) Config {
	cfg := defaults(dir)
	path := filepath.Join(dir, configName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		writeDefault(path, cfg)
		return cfg
	}
	if err != nil {
		log.Printf("Config: failed to read %s: %v", path, err)
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config: failed to parse %s: %v", path, err)
		return defaults(dir)
	}
	fillDefaults(&cfg, dir)
	return cfg
}

// fillDefaults restores defaults for fields the file left out or zeroed.
func fillDefaults(cfg *Config, dir string) {
	def := defaults(dir)
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = def.HistoryPath
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = def.HistoryLimit
	}
	if cfg.SyntaxStyle == "" {
		cfg.SyntaxStyle = def.SyntaxStyle
	}
	if cfg.PollTimeoutMs <= 0 {
		cfg.PollTimeoutMs = def.PollTimeoutMs
	}
}

func writeDefault(path string, cfg Config) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("Config: failed to create config dir: %v", err)
		return
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("Config: failed to write default config: %v", err)
	}
}
