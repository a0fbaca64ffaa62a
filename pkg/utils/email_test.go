package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Maiúsculas viram minúsculas",
			input:    "MARIA@Loja.com",
			expected: "maria@loja.com",
		},
		{
			name:     "Espaços nas bordas são removidos",
			input:    "  maria@loja.com ",
			expected: "maria@loja.com",
		},
		{
			name:     "Espaços internos também são removidos",
			input:    "ma ria@ loja.com",
			expected: "maria@loja.com",
		},
		{
			name:     "Email já normalizado não muda",
			input:    "maria@loja.com",
			expected: "maria@loja.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEmail(tt.input))
		})
	}
}
