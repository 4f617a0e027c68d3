package configloader

import "github.com/yaklabco/classwrap/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Optional booleans: override wins whenever it is set, including to false
//   - Slices: override replaces base entirely if override is non-nil
//   - CLI-only flags: only a true override is carried
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.PrintWidth != 0 {
		result.PrintWidth = override.PrintWidth
	}
	if override.TabWidth != 0 {
		result.TabWidth = override.TabWidth
	}
	if override.Quote != "" {
		result.Quote = override.Quote
	}
	if override.EndingPosition != "" {
		result.EndingPosition = override.EndingPosition
	}
	if override.Dialect != "" {
		result.Dialect = override.Dialect
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Annotations != "" {
		result.Annotations = override.Annotations
	}

	result.UseTabs = mergeBool(result.UseTabs, override.UseTabs)
	result.SyntaxRewrite = mergeBool(result.SyntaxRewrite, override.SyntaxRewrite)
	result.Strict = mergeBool(result.Strict, override.Strict)

	if override.Write {
		result.Write = true
	}
	if override.Check {
		result.Check = true
	}
	if override.Diff {
		result.Diff = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	result.Backups.Enabled = mergeBool(result.Backups.Enabled, override.Backups.Enabled)

	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return result
}

func mergeBool(base, override *bool) *bool {
	if override == nil {
		return base
	}
	return config.BoolPtr(*override)
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
