package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ToTOML serializes the configuration to TOML format.
func (c *Config) ToTOML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// ToTOMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToTOMLWithHeader(header string) ([]byte, error) {
	body, err := c.ToTOML()
	if err != nil {
		return nil, err
	}
	return withHeader(header, body), nil
}

// FromTOML parses a configuration from TOML bytes. Unknown keys are
// rejected.
func FromTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("parse toml: unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Unmarshal parses configuration bytes, choosing the codec from the file
// name's extension. Names without a TOML extension are read as YAML.
func Unmarshal(name string, data []byte) (*Config, error) {
	if IsTOML(name) {
		return FromTOML(data)
	}
	return FromYAML(data)
}

// IsTOML reports whether the file name has a TOML extension.
func IsTOML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".toml")
}
