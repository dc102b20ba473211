package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shortlink-lab/go-shortlinks/internal/validation"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "https", input: "https://example.com", want: true},
		{name: "http with path", input: "http://example.com/a/b?c=d", want: true},
		{name: "with port", input: "https://example.com:8443/x", want: true},
		{name: "empty", input: "", want: false},
		{name: "plain text", input: "not a url", want: false},
		{name: "missing scheme", input: "example.com/page", want: false},
		{name: "scheme only", input: "https://", want: false},
		{name: "relative path", input: "/just/a/path", want: false},
		{name: "control char", input: "http://example.com/\npath", want: false},
		{name: "space in host", input: "http://exa mple.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsValidURL(tt.input))
		})
	}
}
