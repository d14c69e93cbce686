// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: config/config.go
// Summary: JSON configuration store for goterm.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

const configName = "goterm.json"

// Config holds the program settings. Missing fields fall back to
// defaults; the config layer never fails the program.
type Config struct {
	// Shell is the child command started on the pty.
	Shell string `json:"shell"`
	// Term is the TERM value exported to the child.
	Term string `json:"term"`
}

// Default returns the built-in settings: the user's shell (or /bin/sh)
// under xterm-256color.
func Default() Config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return Config{
		Shell: shell,
		Term:  "xterm-256color",
	}
}

// Load reads the config file, falling back to defaults when the file is
// missing or malformed.
func Load() Config {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Config: Failed to read %s: %v", path, err)
		}
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config: Failed to parse %s: %v", path, err)
		return Default()
	}
	defaults := Default()
	if cfg.Shell == "" {
		cfg.Shell = defaults.Shell
	}
	if cfg.Term == "" {
		cfg.Term = defaults.Term
	}
	return cfg
}

// Path returns the config file location: $XDG_CONFIG_HOME/goterm/ or
// ~/.config/goterm/.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "goterm", configName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "goterm", configName), nil
}
