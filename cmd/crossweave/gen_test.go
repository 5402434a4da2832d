package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	settings, err := parseOverrides([]string{"seed=42", " max-rounds = 30 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"seed": 42, "max-rounds": 30}, settings)
}

func TestParseOverridesEmpty(t *testing.T) {
	settings, err := parseOverrides(nil)
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestParseOverridesErrors(t *testing.T) {
	tests := []struct {
		name string
		pair string
	}{
		{name: "missing equals", pair: "seed"},
		{name: "non-numeric value", pair: "seed=abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseOverrides([]string{tc.pair})
			assert.Error(t, err)
		})
	}
}
