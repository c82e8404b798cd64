// Package config loads SForth's handful of tunables — stack block
// size, code-buffer growth quantum, and token/line length limits —
// from an optional TOML file, falling back to the constants spec.md
// uses for its reference implementation.
//
// Grounded on chazu-maggie/manifest/manifest.go's toml.Unmarshal-based
// Load function.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds SForth's tunable constants.
type Config struct {
	// StackBlockSize is the number of cells per data-stack block.
	// Default 512, matching spec.md §3's reference capacity.
	StackBlockSize int `toml:"stack_block_size"`
	// CodeBufferQuantum is the number of half-words the compiler's
	// code buffer grows by each time it runs out of room. Default
	// 256, matching spec.md §3.
	CodeBufferQuantum int `toml:"code_buffer_quantum"`
	// MaxTokenLen is the longest token the tokenizer keeps. Default
	// 32, matching spec.md §2.
	MaxTokenLen int `toml:"max_token_len"`
	// MaxLineLen is the longest source line Evaluate will accept.
	// Default 1000, matching spec.md §6.
	MaxLineLen int `toml:"max_line_len"`
	// Debug enables the reference's DEBUG_PRINT-style verbose trace
	// of tokenization and dispatch (original_source/utils.h).
	Debug bool `toml:"debug"`
}

// Default returns the reference implementation's constants.
func Default() Config {
	return Config{
		StackBlockSize:    512,
		CodeBufferQuantum: 256,
		MaxTokenLen:       32,
		MaxLineLen:        1000,
	}
}

// Load reads path as TOML and overlays it onto Default(). A missing
// file is not an error: it simply yields the defaults, since
// sforth.toml is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse error in %s: %w", path, err)
	}
	return cfg, nil
}
