package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

type config struct {
	LogLevel logrus.Level
	Output   string
	Strict   bool
}

type fileConfig struct {
	LogLevel string `toml:"log_level"`
	Output   string `toml:"output"`
	Strict   bool   `toml:"strict"`
}

func defaultConfig() config {
	return config{
		LogLevel: logrus.InfoLevel,
		Output:   outputJSON,
	}
}

const (
	outputJSON = "json"
	outputText = "text"
)

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		lvl, err := logrus.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	switch c.Output {
	case outputJSON, outputText:
		return nil
	default:
		return fmt.Errorf("output must be %q or %q, got %q", outputJSON, outputText, c.Output)
	}
}
