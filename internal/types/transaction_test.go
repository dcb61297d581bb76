package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "iso", input: "2026-01-15", want: "2026-01-15"},
		{name: "us slash", input: "01/15/2026", want: "2026-01-15"},
		{name: "us short year", input: "01/15/26", want: "2026-01-15"},
		{name: "surrounding whitespace", input: "  2026-01-15  ", want: "2026-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Format("2006-01-02"))
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2026/01/15"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.35, Round2(2.345))
	assert.Equal(t, -2.35, Round2(-2.345))
	assert.Equal(t, 10.0, Round2(10.004))
	assert.Equal(t, 0.0, Round2(0))
}

func TestIsExpense(t *testing.T) {
	assert.True(t, Transaction{Amount: 12.5}.IsExpense())
	assert.False(t, Transaction{Amount: -2500}.IsExpense())
	assert.False(t, Transaction{Amount: 0}.IsExpense())
}
