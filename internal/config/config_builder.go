// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs      []*Config
	settingsPath string
	err          error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

// build merges the collected configs in the order they were added; every
// later non-zero field overrides the earlier value.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if b.settingsPath != "" {
		config.SettingsPath = b.settingsPath
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withSettingsFile() *configBuilder {
	path, err := ResolveSettingsPath()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	settings, err := LoadSettings(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.settingsPath = path
	b.configs = append(b.configs, &Config{Settings: settings})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(overrides Overrides) *configBuilder {
	b.configs = append(b.configs, &Config{
		Settings: Settings{APIKey: overrides.APIKey},
		Log:      Log{Level: overrides.LogLevel},
	})
	return b
}
