package sif

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBound_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		bound Bound
		want  string
	}{
		{"finite", Bound{Lower: -3, Upper: 7}, `{"lower":-3,"upper":7}`},
		{"default", DefaultBound(), `{"lower":0,"upper":null}`},
		{"free", Bound{Lower: math.Inf(-1), Upper: math.Inf(1)}, `{"lower":null,"upper":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.bound)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestRowKind_MarshalJSON(t *testing.T) {
	out, err := json.Marshal([]RowKind{RowN, RowG, RowL, RowE})
	require.NoError(t, err)
	assert.JSONEq(t, `["N","G","L","E"]`, string(out))
}

func TestProblem_EncodeJSON(t *testing.T) {
	p := mustParse(t, qpText)

	var buf bytes.Buffer
	require.NoError(t, p.EncodeJSON(&buf))

	// Infinite sentinels must not leak into the output.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "QPTEST", decoded["name"])

	bounds := decoded["bounds"].(map[string]any)
	c1 := bounds["c1"].(map[string]any)
	assert.Equal(t, 20.0, c1["upper"])
	assert.Equal(t, 0.0, c1["lower"])
}
