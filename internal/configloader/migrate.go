package configloader

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/classwrap/pkg/classname"
	"github.com/yaklabco/classwrap/pkg/config"
)

// classnamesPlugin is the Prettier plugin whose options classwrap mirrors.
const classnamesPlugin = "prettier-plugin-classnames"

// Config formats reported by DetectConfigFormat.
const (
	FormatJSON       = "json"
	FormatYAML       = "yaml"
	FormatTOML       = "toml"
	FormatJavaScript = "javascript"
	FormatRC         = "rc"
	FormatUnknown    = "unknown"
)

// MigrationResult contains the result of importing a Prettier config.
type MigrationResult struct {
	// Config is the converted classwrap configuration.
	Config *config.Config

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// SourcePath is the path to the original Prettier config.
	SourcePath string

	// Imported lists the classwrap keys that were set, sorted.
	Imported []string
}

func (r *MigrationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ConvertPrettierConfig converts a Prettier config file to a classwrap config.
// Options without a classwrap counterpart are dropped with a warning unless
// they are known formatting options of Prettier itself.
func ConvertPrettierConfig(path string) (*MigrationResult, error) {
	if IsJavaScriptConfig(path) {
		return nil, fmt.Errorf("cannot convert JavaScript config file %q; please create a classwrap config manually", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	raw, err := parseRaw(path, content)
	if err != nil {
		return nil, err
	}

	result := &MigrationResult{SourcePath: path}
	cfg := config.NewConfig()

	processSpecialKeys(raw, result)

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	imported := make(map[string]struct{})
	for _, key := range keys {
		if configKey := processOptionKey(cfg, key, raw[key], result); configKey != "" {
			imported[configKey] = struct{}{}
		}
	}
	for key := range imported {
		result.Imported = append(result.Imported, key)
	}
	sort.Strings(result.Imported)

	result.Config = cfg
	return result, nil
}

// parseRaw decodes a config file into a generic map. A bare .prettierrc may
// hold JSON or YAML.
func parseRaw(path string, content []byte) (map[string]any, error) {
	var raw map[string]any

	switch DetectConfigFormat(path) {
	case FormatJSON:
		if err := parseJSONC(content, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	case FormatRC:
		if err := parseJSONC(content, &raw); err != nil {
			raw = nil
			if yamlErr := yaml.Unmarshal(content, &raw); yamlErr != nil {
				return nil, fmt.Errorf("parse %s as JSON or YAML: %w", filepath.Base(path), yamlErr)
			}
		}
	default:
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	if raw == nil {
		raw = make(map[string]any)
	}
	return raw, nil
}

// parseJSONC parses JSON with comments (JSONC format).
func parseJSONC(content []byte, target any) error {
	if err := json.Unmarshal(content, target); err == nil {
		return nil
	}

	if err := json.Unmarshal(stripJSONComments(content), target); err != nil {
		return fmt.Errorf("unmarshal stripped JSON: %w", err)
	}
	return nil
}

// stripJSONComments removes JavaScript-style comments from JSON content.
// String literals are copied untouched.
func stripJSONComments(content []byte) []byte {
	result := make([]byte, 0, len(content))
	inString := false
	inLineComment := false
	inBlockComment := false

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]

		switch {
		case inLineComment:
			if char == '\n' {
				inLineComment = false
				result = append(result, char)
			}
		case inBlockComment:
			if char == '*' && idx+1 < len(content) && content[idx+1] == '/' {
				inBlockComment = false
				idx++
			}
		case inString:
			result = append(result, char)
			if char == '\\' && idx+1 < len(content) {
				idx++
				result = append(result, content[idx])
			} else if char == '"' {
				inString = false
			}
		case char == '"':
			inString = true
			result = append(result, char)
		case char == '/' && idx+1 < len(content) && content[idx+1] == '/':
			inLineComment = true
			idx++
		case char == '/' && idx+1 < len(content) && content[idx+1] == '*':
			inBlockComment = true
			idx++
		default:
			result = append(result, char)
		}
	}

	return result
}

// processSpecialKeys handles Prettier keys that are structural rather than
// formatting options.
func processSpecialKeys(raw map[string]any, result *MigrationResult) {
	if plugins, ok := raw["plugins"]; ok {
		if !hasClassnamesPlugin(plugins) {
			result.warnf("%s is not listed in plugins; Prettier did not wrap class names for this project",
				classnamesPlugin)
		}
		delete(raw, "plugins")
	}

	if _, ok := raw["overrides"]; ok {
		result.warnf("'overrides' is not supported; per-file settings must be merged manually")
		delete(raw, "overrides")
	}
}

func hasClassnamesPlugin(value any) bool {
	list, ok := value.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		if name, isString := item.(string); isString && strings.Contains(name, classnamesPlugin) {
			return true
		}
	}
	return false
}

// processOptionKey applies one Prettier option to cfg and returns the
// classwrap key it set, or "" if nothing was imported.
func processOptionKey(cfg *config.Config, key string, value any, result *MigrationResult) string {
	configKey := NormalizeOptionKey(key)
	if configKey == "" {
		if !IsIgnoredOption(key) {
			result.warnf("unknown option %q; skipping", key)
		}
		return ""
	}

	switch configKey {
	case "print_width", "tab_width":
		n, ok := toInt(value)
		if !ok || n <= 0 {
			result.warnf("option %q must be a positive integer; got %v", key, value)
			return ""
		}
		if configKey == "print_width" {
			cfg.PrintWidth = n
		} else {
			cfg.TabWidth = n
		}
	case "use_tabs", "syntax_rewrite":
		b, ok := value.(bool)
		if !ok {
			result.warnf("option %q must be a boolean; got %v", key, value)
			return ""
		}
		if configKey == "use_tabs" {
			cfg.UseTabs = config.BoolPtr(b)
		} else {
			cfg.SyntaxRewrite = config.BoolPtr(b)
		}
	case "quote":
		quote, ok := toQuote(value)
		if !ok {
			result.warnf("option %q must be a boolean or single/double; got %v", key, value)
			return ""
		}
		cfg.Quote = quote
	case "ending_position":
		s, _ := value.(string)
		ending := config.EndingPosition(s)
		if !ending.IsValid() {
			result.warnf("option %q has unknown value %v", key, value)
			return ""
		}
		cfg.EndingPosition = ending
	case "dialect":
		s, _ := value.(string)
		d, err := classname.ParseDialect(s)
		if err != nil {
			result.warnf("parser %v has no matching dialect; dialects will be detected per file", value)
			return ""
		}
		cfg.Dialect = string(d)
	}
	return configKey
}

// toInt accepts the integer shapes produced by the JSON, YAML and TOML decoders.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		if v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func toQuote(value any) (config.QuoteStyle, bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return config.QuoteSingle, true
		}
		return config.QuoteDouble, true
	case string:
		quote := config.QuoteStyle(v)
		return quote, quote.IsValid()
	default:
		return "", false
	}
}

// GenerateMigrationHeader returns a header comment for imported configs.
func GenerateMigrationHeader(sourcePath string) string {
	return fmt.Sprintf(`# classwrap configuration
# Imported from: %s
# See: https://github.com/yaklabco/classwrap
`, filepath.Base(sourcePath))
}

// CanMigrate returns true if the config file can be imported.
// JavaScript config files cannot be.
func CanMigrate(path string) bool {
	return !IsJavaScriptConfig(path)
}

// GetMigrationWarning returns a warning message for files that cannot be imported.
func GetMigrationWarning(path string) string {
	if IsJavaScriptConfig(path) {
		return fmt.Sprintf("JavaScript config file (%s) cannot be converted automatically; "+
			"please create a .classwrap.yml file manually or run 'classwrap init'", filepath.Ext(path))
	}
	return ""
}

// DetectConfigFormat determines the format of a config file.
func DetectConfigFormat(path string) string {
	switch {
	case IsJSONConfig(path):
		return FormatJSON
	case IsYAMLConfig(path):
		return FormatYAML
	case config.IsTOML(path):
		return FormatTOML
	case IsJavaScriptConfig(path):
		return FormatJavaScript
	case filepath.Ext(path) == "" || filepath.Base(path) == ".prettierrc":
		return FormatRC
	default:
		return FormatUnknown
	}
}
