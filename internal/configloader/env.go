package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/classwrap/pkg/config"
)

// envVarPrefix is the prefix for all classwrap environment variables.
const envVarPrefix = "CLASSWRAP_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"PRINT_WIDTH":     {field: "print_width", typ: envTypeInt, help: "Line width class lists are wrapped at"},
	"TAB_WIDTH":       {field: "tab_width", typ: envTypeInt, help: "Width of one indentation level"},
	"USE_TABS":        {field: "use_tabs", typ: envTypeBool, help: "Indent continuation lines with tabs: true or false"},
	"QUOTE":           {field: "quote", typ: envTypeString, help: "Preferred expression quote: single or double"},
	"ENDING_POSITION": {field: "ending_position", typ: envTypeString, help: "relative, absolute or absolute-with-indent"},
	"SYNTAX_REWRITE":  {field: "syntax_rewrite", typ: envTypeBool, help: "Allow attribute to expression rewrites: true or false"},
	"DIALECT":         {field: "dialect", typ: envTypeString, help: "Force a template dialect"},
	"STRICT":          {field: "strict", typ: envTypeBool, help: "Fail on unrestorable nested expressions: true or false"},
	"JOBS":            {field: "jobs", typ: envTypeInt, help: "Number of parallel workers (0 = auto)"},
	"FORMAT":          {field: "format", typ: envTypeString, help: "Output format: text, table, json, or diff"},
	"IGNORE":          {field: "ignore", typ: envTypeSlice, help: "Comma-separated list of ignore patterns"},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool, help: "Enable backups when writing: true or false"},
	"BACKUPS_MODE":    {field: "backups.mode", typ: envTypeString, help: "Backup mode: sidecar or none"},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool, help: "Disable backups: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with CLASSWRAP_ (e.g., CLASSWRAP_PRINT_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	// Sorted so the first reported error is stable.
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)

	for _, suffix := range suffixes {
		envVar := envVarPrefix + suffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}
		if err := applyEnvValue(cfg, envMappings[suffix], value, envVar); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue splits a comma-separated value, dropping empty elements.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "quote":
		cfg.Quote = config.QuoteStyle(value)
	case "ending_position":
		cfg.EndingPosition = config.EndingPosition(value)
	case "dialect":
		cfg.Dialect = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "use_tabs":
		cfg.UseTabs = config.BoolPtr(value)
	case "syntax_rewrite":
		cfg.SyntaxRewrite = config.BoolPtr(value)
	case "strict":
		cfg.Strict = config.BoolPtr(value)
	case "backups.enabled":
		cfg.Backups.Enabled = config.BoolPtr(value)
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "print_width":
		cfg.PrintWidth = value
	case "tab_width":
		cfg.TabWidth = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}
