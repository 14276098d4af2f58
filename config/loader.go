package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names a specification encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// Load reads and validates the graph specification at path. The encoding is
// chosen by extension. A missing name defaults to the file's base name.
func Load(path string) (*GraphSpec, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	spec, err := decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if strings.TrimSpace(spec.Name) == "" {
		spec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := spec.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return spec, nil
}

// Decode parses a specification in the given format and validates it.
func Decode(data []byte, format Format) (*GraphSpec, error) {
	spec, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

func decode(data []byte, format Format) (*GraphSpec, error) {
	var spec GraphSpec
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &spec); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", string(format))
	}

	return &spec, nil
}
