// Copyright 2025 Ironbark Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// ledger-inspect config.toml key mapping to tool settings
type fileConfig struct {
	Bech32Prefix string `toml:"bech32_prefix"`
	LogLevel     string `toml:"log_level"`
}

type toolConfig struct {
	bech32Prefix string
	level        string
}

func defaultConfig() toolConfig {
	return toolConfig{
		bech32Prefix: "account",
		level:        "info",
	}
}

// loadConfig overlays a TOML file on the defaults. An empty path means
// defaults only.
func loadConfig(path string) (toolConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load config: %w", err)
	}
	if meta.IsDefined("bech32_prefix") {
		cfg.bech32Prefix = strings.TrimSpace(raw.Bech32Prefix)
	}
	if meta.IsDefined("log_level") {
		cfg.level = strings.TrimSpace(raw.LogLevel)
	}
	if cfg.bech32Prefix == "" {
		return toolConfig{}, fmt.Errorf("bech32_prefix cannot be empty")
	}
	if _, err := zerolog.ParseLevel(cfg.level); err != nil {
		return toolConfig{}, fmt.Errorf("invalid log_level %q", cfg.level)
	}
	return cfg, nil
}

func (c toolConfig) logLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
