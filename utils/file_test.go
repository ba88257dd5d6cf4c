package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foto.jpg", "foto.jpg"},
		{"mi foto linda.png", "mi_foto_linda.png"},
		{"../../etc/passwd", "passwd"},
		{"sartén ñandú.webp", "sartn_and.webp"},
		{"...", ""},
		{"a b c.jpeg", "a_b_c.jpeg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "in=%q", tt.in)
	}
}
