package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding
type Format string

// Supported formats
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Load reads a catalog file. Sections missing from the file are taken from Default.
func Load(path string) (Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Catalog{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a catalog from r, merges it over Default and validates it
func Decode(r io.Reader, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
			return Catalog{}, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Catalog{}, err
		}
	default:
		return Catalog{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	for i, l := range c.Logs {
		if sev, err := ParseSeverity(string(l.Severity)); err == nil {
			c.Logs[i].Severity = sev
		}
	}

	c = c.Merge(Default())
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
