package config

import (
	"fmt"
	"strings"
)

// Template formats accepted by GenerateTemplate.
const (
	TemplateYAML = "yaml"
	TemplateTOML = "toml"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "toml".
	Format string

	// Dialect pre-selects a dialect instead of per-file detection.
	Dialect string
}

const templateHeader = `# classwrap configuration
# See: https://github.com/yaklabco/classwrap`

// GenerateTemplate creates a commented configuration file with the
// default settings.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", TemplateYAML:
		return []byte(yamlTemplate(opts)), nil
	case TemplateTOML:
		return []byte(tomlTemplate(opts)), nil
	default:
		return nil, fmt.Errorf("unknown template format %q: must be yaml or toml", opts.Format)
	}
}

func yamlTemplate(opts TemplateOptions) string {
	var b strings.Builder
	b.WriteString(templateHeader + "\n\n")
	fmt.Fprintf(&b, "# Line width class lists are wrapped at\nprint_width: %d\n\n", DefaultPrintWidth)
	fmt.Fprintf(&b, "# Width of one indentation level\ntab_width: %d\n\n", DefaultTabWidth)
	b.WriteString("# Indent continuation lines with tabs\n# use_tabs: false\n\n")
	fmt.Fprintf(&b, "# Preferred quote for expression literals: single or double\nquote: %s\n\n", QuoteDouble)
	fmt.Fprintf(&b, "# Width accounting: relative, absolute or absolute-with-indent\nending_position: %s\n\n",
		EndingRelative)
	b.WriteString("# Turn multi-line attribute values into {`...`} in jsx, astro and svelte\n" +
		"# syntax_rewrite: false\n\n")
	if opts.Dialect != "" {
		fmt.Fprintf(&b, "# Template dialect (detected per file when unset)\ndialect: %s\n\n", opts.Dialect)
	} else {
		b.WriteString("# Template dialect (detected per file when unset)\n# dialect: html\n\n")
	}
	b.WriteString("# Fail instead of warning when nested expressions cannot be restored\n# strict: false\n\n")
	b.WriteString("# File patterns to ignore (glob patterns)\n# ignore:\n#   - \"node_modules/**\"\n\n")
	b.WriteString("# Backup settings when writing files\nbackups:\n  enabled: true\n  mode: sidecar\n")
	return b.String()
}

func tomlTemplate(opts TemplateOptions) string {
	var b strings.Builder
	b.WriteString(templateHeader + "\n\n")
	fmt.Fprintf(&b, "# Line width class lists are wrapped at\nprint_width = %d\n\n", DefaultPrintWidth)
	fmt.Fprintf(&b, "# Width of one indentation level\ntab_width = %d\n\n", DefaultTabWidth)
	b.WriteString("# Indent continuation lines with tabs\n# use_tabs = false\n\n")
	fmt.Fprintf(&b, "# Preferred quote for expression literals: single or double\nquote = %q\n\n", QuoteDouble)
	fmt.Fprintf(&b, "# Width accounting: relative, absolute or absolute-with-indent\nending_position = %q\n\n",
		EndingRelative)
	b.WriteString("# Turn multi-line attribute values into {`...`} in jsx, astro and svelte\n" +
		"# syntax_rewrite = false\n\n")
	if opts.Dialect != "" {
		fmt.Fprintf(&b, "# Template dialect (detected per file when unset)\ndialect = %q\n\n", opts.Dialect)
	} else {
		b.WriteString("# Template dialect (detected per file when unset)\n# dialect = \"html\"\n\n")
	}
	b.WriteString("# Fail instead of warning when nested expressions cannot be restored\n# strict = false\n\n")
	b.WriteString("# File patterns to ignore (glob patterns)\n# ignore = [\"node_modules/**\"]\n\n")
	b.WriteString("# Backup settings when writing files\n[backups]\nenabled = true\nmode = \"sidecar\"\n")
	return b.String()
}
