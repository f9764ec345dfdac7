package sif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	pairs, perr := parsePairs([]string{"obj", "1.5"}, 1, SectionColumns)
	require.Nil(t, perr)
	assert.Equal(t, []pair{{name: "obj", value: 1.5}}, pairs)

	pairs, perr = parsePairs([]string{"obj", "-1.5e2", "r1", "2"}, 1, SectionColumns)
	require.Nil(t, perr)
	assert.Equal(t, []pair{{name: "obj", value: -150}, {name: "r1", value: 2}}, pairs)
}

func TestParsePairs_Arity(t *testing.T) {
	for _, tokens := range [][]string{
		{},
		{"obj"},
		{"obj", "1.0", "r1"},
		{"obj", "1.0", "r1", "2.0", "r2"},
		{"obj", "1.0", "r1", "2.0", "r2", "3.0"},
	} {
		_, perr := parsePairs(tokens, 7, SectionRHS)
		require.NotNil(t, perr, "tokens: %v", tokens)
		assert.Equal(t, ErrMalformedDataRow, perr.Kind)
		assert.Equal(t, 7, perr.Line)
	}
}

func TestParseNumber(t *testing.T) {
	v, perr := parseNumber("-2.5e3", 1, SectionRHS)
	require.Nil(t, perr)
	assert.Equal(t, -2500.0, v)

	_, perr = parseNumber("12x", 3, SectionRHS)
	require.NotNil(t, perr)
	assert.Equal(t, ErrInvalidNumber, perr.Kind)
	assert.Equal(t, 3, perr.Line)
}
