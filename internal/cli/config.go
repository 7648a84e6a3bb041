package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pipeloop/interior"
)

// Config is the optional TOML configuration file. Command-line flags
// override any value set here.
//
//	edges   = "down"   # vertical-edge class: "down" (|F7) or "up" (|LJ)
//	workers = 4        # rows scanned concurrently; 1 scans sequentially
//	verify  = true     # cross-check the count with Pick's theorem and flood fill
type Config struct {
	Edges   string `toml:"edges"`
	Workers int    `toml:"workers"`
	Verify  bool   `toml:"verify"`
}

// DefaultConfig returns the settings used when no file or flag says otherwise.
func DefaultConfig() Config {
	return Config{Edges: "down", Workers: 1}
}

// LoadConfig decodes the TOML file at path over DefaultConfig.
// Unknown keys are an error so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// options converts the configuration into interior counting options.
func (c Config) options() ([]interior.Option, error) {
	edges, err := interior.ParseEdgeClass(c.Edges)
	if err != nil {
		return nil, err
	}
	if c.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return []interior.Option{
		interior.WithEdgeClass(edges),
		interior.WithWorkers(c.Workers),
	}, nil
}
