// Package config loads optional TOML defaults for the command-line tools.
// Values given explicitly on the command line always win.
package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Built-in defaults.
const (
	DefaultMinK      = 10
	DefaultMaxK      = 20
	DefaultK         = 13
	DefaultThreshold = 15
	DefaultOutput    = "text"
)

// File mirrors the accepted TOML keys. Zero values mean "not set".
type File struct {
	Threads  int      `toml:"threads"`
	Output   string   `toml:"output"`
	Count    Count    `toml:"count"`
	Annotate Annotate `toml:"annotate"`
}

type Count struct {
	MinK int `toml:"min-k-mer"`
	MaxK int `toml:"max-k-mer"`
}

type Annotate struct {
	K         int     `toml:"kmer"`
	Threshold *uint32 `toml:"threshold"`
}

// Load reads path. An empty path yields an empty File.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return f, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes TOML, rejecting unknown keys.
func Parse(data []byte) (File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, errors.Wrap(err, "parse config")
	}
	return f, nil
}
