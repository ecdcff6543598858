package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"68.0076", "68.01"},
		{"61.20684", "61.21"},
		{"4.535", "4.54"},
		{"4.5349", "4.53"},
		{"0", "0.00"},
		{"0.005", "0.01"},
		{"25", "25.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in)))
		})
	}
}
