package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/primus/go/internal/colorpool"
)

type paletteFile struct {
	Colors []struct {
		Name string `yaml:"name"`
		Hex  string `yaml:"hex"`
	} `yaml:"colors"`
}

// LoadPalette reads a palette file. An empty path yields the default palette.
func LoadPalette(path string) ([]colorpool.Color, error) {
	if path == "" {
		return colorpool.DefaultPalette(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	return ParsePalette(data)
}

// ParsePalette decodes palette YAML and checks it forms a valid pool.
func ParsePalette(data []byte) ([]colorpool.Color, error) {
	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	colors := make([]colorpool.Color, 0, len(file.Colors))
	seen := make(map[string]bool, len(file.Colors))
	for i, entry := range file.Colors {
		c, err := colorpool.ParseColor(entry.Name, entry.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		if seen[c.Hex()] {
			return nil, fmt.Errorf("palette entry %d (%s): %w", i, c.Hex(), colorpool.ErrDuplicateColor)
		}
		seen[c.Hex()] = true
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, colorpool.ErrEmptyPalette
	}
	return colors, nil
}
