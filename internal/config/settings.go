// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/tidwall/jsonc"
)

// ResolveSettingsPath returns the settings file location: SUBLIME_CONFIG
// when set, else ~/.config/sublime/config.json.
func ResolveSettingsPath() (string, error) {
	var envCfg struct {
		Path string `env:"SUBLIME_CONFIG"`
	}
	if err := parseEnv(&envCfg); err != nil {
		return "", err
	}
	if envCfg.Path != "" {
		return envCfg.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoHomeDir, err)
	}
	return filepath.Join(home, ".config", "sublime", "config.json"), nil
}

// LoadSettings reads the persisted settings at path. Comments and trailing
// commas are tolerated. A missing file yields zero Settings.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings file: %w", err)
	}

	var settings Settings
	if err = json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings file %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings merges update into the settings stored at path and writes
// the result. Fields left empty in update keep their saved values. A
// non-empty SaveDir is resolved to an absolute path and must be an existing
// directory.
func SaveSettings(path string, update Settings) (Settings, error) {
	if update.APIKey == "" && update.SaveDir == "" && !update.Permission {
		return Settings{}, ErrNoOptions
	}

	if update.SaveDir != "" {
		abs, err := filepath.Abs(update.SaveDir)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSaveDir, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return Settings{}, ErrInvalidSaveDir
		}
		update.SaveDir = abs
	}

	saved, err := LoadSettings(path)
	if err != nil {
		return Settings{}, err
	}

	if err = mergo.Merge(&update, saved); err != nil {
		return Settings{}, fmt.Errorf("error merging settings: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return Settings{}, fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(update, "", "  ")
	if err != nil {
		return Settings{}, fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err = os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return Settings{}, fmt.Errorf("failed to write settings: %w", err)
	}

	return update, nil
}
