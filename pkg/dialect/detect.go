// Package dialect detects the template dialect of a source file.
// It uses go-enry to identify the language from the file name and content,
// then refines ambiguous results with framework-specific markers.
package dialect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/classwrap/pkg/classname"
)

// Extensions lists the file extensions classwrap formats by default.
//
//nolint:gochecknoglobals // Read-only lookup table.
var Extensions = []string{".html", ".htm", ".vue", ".svelte", ".astro", ".jsx", ".tsx", ".js", ".ts", ".mjs", ".cjs"}

// byLanguage maps go-enry language names to dialects.
//
//nolint:gochecknoglobals // Read-only lookup table.
var byLanguage = map[string]classname.Dialect{
	"HTML":       classname.DialectHTML,
	"Vue":        classname.DialectVue,
	"Svelte":     classname.DialectSvelte,
	"Astro":      classname.DialectAstro,
	"JavaScript": classname.DialectJSX,
	"TypeScript": classname.DialectJSX,
	"TSX":        classname.DialectJSX,
	"JSX":        classname.DialectJSX,
}

// byExtension is consulted when go-enry does not know a language.
//
//nolint:gochecknoglobals // Read-only lookup table.
var byExtension = map[string]classname.Dialect{
	".html":   classname.DialectHTML,
	".htm":    classname.DialectHTML,
	".vue":    classname.DialectVue,
	".svelte": classname.DialectSvelte,
	".astro":  classname.DialectAstro,
	".jsx":    classname.DialectJSX,
	".tsx":    classname.DialectJSX,
	".js":     classname.DialectJSX,
	".ts":     classname.DialectJSX,
	".mjs":    classname.DialectJSX,
	".cjs":    classname.DialectJSX,
}

// angularMarkers are attribute forms only Angular templates use.
//
//nolint:gochecknoglobals // Read-only lookup table.
var angularMarkers = [][]byte{
	[]byte("[ngClass]"), []byte("[class."), []byte("*ngIf"), []byte("*ngFor"), []byte("(click)"), []byte("@if ("),
}

// vueMarkers are attribute forms that indicate a Vue template.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vueMarkers = [][]byte{
	[]byte("v-bind:"), []byte("v-if="), []byte("v-for="), []byte("@click="),
}

// Detect returns the dialect for a file. Returns html if nothing more
// specific can be determined.
func Detect(path string, content []byte) classname.Dialect {
	base := strings.ToLower(filepath.Base(path))

	// Strategy 1: Angular component templates are plain .html by name.
	if strings.HasSuffix(base, ".component.html") {
		return classname.DialectAngular
	}

	// Strategy 2: Ask go-enry, which knows file names, extensions and
	// disambiguates with content.
	if d, ok := byLanguage[enry.GetLanguage(base, content)]; ok {
		if d == classname.DialectHTML {
			return detectByPattern(content)
		}
		return d
	}

	// Strategy 3: Fall back to the extension table.
	if d, ok := byExtension[filepath.Ext(base)]; ok {
		if d == classname.DialectHTML {
			return detectByPattern(content)
		}
		return d
	}

	return classname.DialectHTML
}

// detectByPattern refines an HTML result using framework markers.
func detectByPattern(content []byte) classname.Dialect {
	if containsAny(content, angularMarkers) {
		return classname.DialectAngular
	}
	if containsAny(content, vueMarkers) {
		return classname.DialectVue
	}
	return classname.DialectHTML
}

func containsAny(content []byte, markers [][]byte) bool {
	for _, marker := range markers {
		if bytes.Contains(content, marker) {
			return true
		}
	}
	return false
}

// Supported reports whether path has an extension classwrap formats.
func Supported(path string) bool {
	_, ok := byExtension[strings.ToLower(filepath.Ext(path))]
	return ok
}
