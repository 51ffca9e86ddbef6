package pathfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		token string
		want  Directive
		ok    bool
	}{
		{"no-exceptions", NoExceptions, true},
		{"exclude-root", ExcludeRoot, true},
		{"  exclude-root  ", ExcludeRoot, true},
		{"asdfasdf", 0, false},
		{"No-Exceptions", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseDirective(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectiveString(t *testing.T) {
	for _, d := range Directives() {
		parsed, ok := ParseDirective(d.String())
		assert.True(t, ok, d.String())
		assert.Equal(t, d, parsed)
	}
	assert.Equal(t, "Directive(42)", Directive(42).String())
}

func TestOptionsApply(t *testing.T) {
	opts := DefaultOptions()
	assert.False(t, opts.AllowMissingPaths)
	assert.True(t, opts.IncludeRoot)

	opts.Apply(ExcludeRoot)
	assert.False(t, opts.IncludeRoot)
	assert.False(t, opts.AllowMissingPaths, "directives are independent")

	opts.Apply(NoExceptions)
	assert.True(t, opts.AllowMissingPaths)
	assert.False(t, opts.IncludeRoot)
}

func TestIsDirectiveLine(t *testing.T) {
	token, ok := isDirectiveLine("> no-exceptions")
	assert.True(t, ok)
	assert.Equal(t, "no-exceptions", token)

	token, ok = isDirectiveLine(">exclude-root")
	assert.True(t, ok)
	assert.Equal(t, "exclude-root", token)

	_, ok = isDirectiveLine("lib/>odd")
	assert.False(t, ok)
}
