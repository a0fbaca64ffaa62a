package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "Zero deve manter as duas casas decimais",
			value:    0,
			expected: "$0,00",
		},
		{
			name:     "Valor inteiro ganha casas decimais",
			value:    350,
			expected: "$350,00",
		},
		{
			name:     "Centavos usam vírgula como separador decimal",
			value:    50.5,
			expected: "$50,50",
		},
		{
			name:     "Milhares usam ponto como separador",
			value:    1234567.5,
			expected: "$1.234.567,50",
		},
		{
			name:     "Fração além de duas casas é arredondada",
			value:    10.456,
			expected: "$10,46",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.value))
		})
	}
}
