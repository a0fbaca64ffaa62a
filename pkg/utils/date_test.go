package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida no formato ISO", func(t *testing.T) {
		date, err := ParseDate("2024-01-08")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("String vazia devolve data zero sem erro", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("Formato inválido devolve erro", func(t *testing.T) {
		_, err := ParseDate("08/01/2024")
		assert.Error(t, err)
	})
}

func TestTruncateToDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Descarta hora, minuto e segundo",
			input:    time.Date(2024, 1, 8, 23, 59, 59, 999, time.UTC),
			expected: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Meia-noite permanece igual",
			input:    time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Preserva o fuso horário original",
			input:    time.Date(2024, 1, 8, 15, 30, 0, 0, time.Local),
			expected: time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateToDay(tt.input))
		})
	}
}
