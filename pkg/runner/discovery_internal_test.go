package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{name: "src/App.vue", pattern: "*.vue", want: true},
		{name: "src/App.vue", pattern: "*.html", want: false},
		{name: "gen/a/b.tsx", pattern: "gen/**", want: true},
		{name: "src/gen/b.tsx", pattern: "gen/**", want: false},
		{name: "src/gen/b.tsx", pattern: "**/gen/**", want: true},
		{name: "a/b/c/d.html", pattern: "a/**/d.html", want: true},
		{name: "a/d.html", pattern: "a/**/d.html", want: true},
		{name: "a/b/d.vue", pattern: "a/**/d.html", want: false},
		{name: "vendor", pattern: "vendor/", want: true},
		{name: "vendor", pattern: "vendor", want: true},
		{name: "vendor/x.js", pattern: "x.*", want: true},
		{name: "src/vendor/x.js", pattern: "src/vendor", want: true},
		{name: "src/x.js", pattern: "src/[", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+tt.pattern, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matchGlob(tt.name, tt.pattern))
		})
	}
}
