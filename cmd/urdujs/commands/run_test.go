package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urdujs/urdujs/pkg/engine"
)

func TestParseBindings(t *testing.T) {
	bindings, err := parseBindings([]string{"n=5", "name=ali", "ok=true"})
	require.NoError(t, err)
	assert.Equal(t, []engine.Binding{
		{Name: "n", Value: float64(5)},
		{Name: "name", Value: "ali"},
		{Name: "ok", Value: true},
	}, bindings)
}

func TestParseBindings_Invalid(t *testing.T) {
	_, err := parseBindings([]string{"novalue"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected name=value")

	_, err = parseBindings([]string{"=5"})
	require.Error(t, err)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, float64(3.5), parseValue("3.5"))
	assert.Equal(t, "salam", parseValue("salam"))
}
