package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a component definition from disk.
func Load(path string) (Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Component{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a component definition from a filesystem.
func LoadFS(fsys fs.FS, name string) (Component, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Component{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes JSON, then YAML, then TOML, fills defaults and validates the
// result. source is only used in error messages.
func Parse(data []byte, source string) (Component, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Component{}, fmt.Errorf("config: file %s is empty", source)
	}

	component, err := decode(data)
	if err != nil {
		return Component{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	component = component.WithDefaults()
	if err := component.Validate(); err != nil {
		return Component{}, err
	}
	return component, nil
}

func decode(data []byte) (Component, error) {
	var component Component
	if err := json.Unmarshal(data, &component); err == nil {
		return component, nil
	}

	// YAML is a superset of JSON and accepts most TOML key = value lines as a
	// plain scalar, so only mappings count as a YAML hit.
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc) > 0 {
		component = Component{}
		if err := yaml.Unmarshal(data, &component); err == nil {
			return component, nil
		}
	}

	component = Component{}
	if _, err := toml.Decode(string(data), &component); err == nil {
		return component, nil
	}

	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 32 {
		trimmed = trimmed[:32] + "..."
	}
	return Component{}, fmt.Errorf("invalid JSON, YAML or TOML near %q", trimmed)
}
