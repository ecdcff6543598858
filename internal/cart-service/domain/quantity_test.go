package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		invalid bool
	}{
		{raw: "3", want: 3},
		{raw: " 12 ", want: 12},
		{raw: "2.0", want: 2},
		{raw: "0", want: 0},
		{raw: "-4", want: 0},
		{raw: "99", want: 99},
		{raw: "100", invalid: true},
		{raw: "1.5", invalid: true},
		{raw: "-0.5", invalid: true},
		{raw: "abc", invalid: true},
		{raw: "", invalid: true},
		{raw: "1e1000000000", invalid: true},
		{raw: "0e-1000000000", want: 0},
		{raw: "-1e1000000000", want: 0},
		{raw: "1e-1000000000", invalid: true},
		{raw: "1e99999999999", invalid: true},
		{raw: "1" + strings.Repeat("0", 40), invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseQuantity(tt.raw, DefaultMaxQuantity)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidQuantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuantity_HugeExponentsReturnPromptly(t *testing.T) {
	for _, raw := range []string{"1e1000000000", "0e-1000000000", "7e-2000000000", "-3e2000000000"} {
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = ParseQuantity(raw, DefaultMaxQuantity)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("ParseQuantity(%q) did not return within a second", raw)
		}
	}
}

func TestParseQuantity_LimitMessageNamesPolicy(t *testing.T) {
	_, err := ParseQuantity("1e12", DefaultMaxQuantity)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Contains(t, err.Error(), "per-line limit of 99")

	_, err = ParseQuantity("150", DefaultMaxQuantity)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Contains(t, err.Error(), "per-line limit of 99")
}
