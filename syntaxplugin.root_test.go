package syntaxplugin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRoot(t *testing.T) {
	sep := string(filepath.Separator)
	p := func(parts ...string) string {
		return sep + filepath.Join(parts...)
	}

	tests := []struct {
		name     string
		file     string
		expected string
	}{
		{
			name:     "syntax segment",
			file:     p("wiki", "lib", "plugins", "door43obs", "syntax", "button.go"),
			expected: p("wiki", "lib", "plugins", "door43obs"),
		},
		{
			name:     "nested below syntax",
			file:     p("wiki", "plugins", "door43obs", "syntax", "buttons", "obs.go"),
			expected: p("wiki", "plugins", "door43obs"),
		},
		{
			name:     "first syntax segment wins",
			file:     p("srv", "syntax", "plugins", "obs", "syntax", "button.go"),
			expected: p("srv"),
		},
		{
			name:     "no syntax segment",
			file:     p("wiki", "plugins", "door43obs", "button.go"),
			expected: p("wiki", "plugins", "door43obs"),
		},
		{
			name:     "segment prefix is not a match",
			file:     p("wiki", "plugins", "syntaxhighlight", "button.go"),
			expected: p("wiki", "plugins", "syntaxhighlight"),
		},
		{
			name:     "segment suffix is not a match",
			file:     p("wiki", "plugins", "mysyntax", "button.go"),
			expected: p("wiki", "plugins", "mysyntax"),
		},
		{
			name:     "prefix before real segment",
			file:     p("wiki", "syntaxes", "obs", "syntax", "button.go"),
			expected: p("wiki", "syntaxes", "obs"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveRoot(filepath.Dir(tt.file)))
		})
	}
}

func TestDeriveRoot_RelativePath(t *testing.T) {
	assert.Equal(t, "plugins", DeriveRoot(filepath.Join("plugins", "syntax")))
	assert.Equal(t, ".", DeriveRoot("."))
}
