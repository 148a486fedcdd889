package main

import (
	"github.com/BurntSushi/toml"

	"github.com/vortessa/emst"
)

// fileConfig is the TOML-file shape for `--config file.toml` overrides,
// applied on top of emst.DefaultConfig() before flags are layered on top
// of that.
type fileConfig struct {
	K         int    `toml:"k"`
	Workers   int    `toml:"workers"`
	StackMode string `toml:"stack_mode"`
}

func loadConfig(path string) (emst.Config, error) {
	cfg := emst.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return emst.Config{}, err
	}

	if fc.K > 0 {
		cfg.K = fc.K
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	switch fc.StackMode {
	case "compact":
		cfg.StackMode = emst.StackModeCompact
	case "cached", "":
		cfg.StackMode = emst.StackModeCached
	}
	return cfg, nil
}
