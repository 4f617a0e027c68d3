package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
// It produces human-readable output with appropriate formatting.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}
	return withHeader(header, yamlBytes), nil
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are
// rejected so typos in config files surface early.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.UseTabs = clonePtr(c.UseTabs)
	clone.SyntaxRewrite = clonePtr(c.SyntaxRewrite)
	clone.Strict = clonePtr(c.Strict)
	clone.Backups.Enabled = clonePtr(c.Backups.Enabled)
	if c.Extensions != nil {
		clone.Extensions = append([]string(nil), c.Extensions...)
	}
	if c.Ignore != nil {
		clone.Ignore = append([]string(nil), c.Ignore...)
	}
	return &clone
}

func clonePtr(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// withHeader prepends a comment header followed by a blank line.
func withHeader(header string, body []byte) []byte {
	if header == "" {
		return body
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes()
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
