// Package config loads engine-wide defaults from an optional TOML file.
// Loading is always explicit — there is no hidden global config object,
// mirroring the engine's general preference for constructors over
// package-level mutable state.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EvalWeights overrides the material values eval.Material otherwise
// hardcodes. A zero value means "use the built-in default".
type EvalWeights struct {
	Pawn   int `toml:"pawn"`
	Knight int `toml:"knight"`
	Bishop int `toml:"bishop"`
	Rook   int `toml:"rook"`
	Queen  int `toml:"queen"`
}

// Config is the full set of engine defaults a negafish.toml file may
// override.
type Config struct {
	DefaultDepth    int         `toml:"default_depth"`
	DefaultMoveTime int         `toml:"default_move_time_ms"`
	TTSizeMB        int         `toml:"tt_size_mb"`
	Eval            EvalWeights `toml:"eval"`
}

// Default returns the hardcoded fallback configuration, used whenever
// no config file is present.
func Default() Config {
	return Config{
		DefaultDepth:    6,
		DefaultMoveTime: 0,
		TTSizeMB:        64,
	}
}

// Load reads path as TOML and overlays it on Default(). A missing file
// is not an error — it just means "use the defaults".
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
