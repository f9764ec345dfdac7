package sif

import (
	"encoding/json"
	"io"
	"math"
)

// JSON bridge for parsed problems. encoding/json cannot represent the
// infinite bound sentinels, so bounds render infinite sides as null,
// and row kinds render as their SIF letter codes.

// MarshalJSON renders the row kind as its SIF letter.
func (k RowKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// MarshalJSON renders infinite bound sides as null.
func (b Bound) MarshalJSON() ([]byte, error) {
	var lower, upper *float64
	if !math.IsInf(b.Lower, -1) {
		lower = &b.Lower
	}
	if !math.IsInf(b.Upper, 1) {
		upper = &b.Upper
	}
	return json.Marshal(struct {
		Lower *float64 `json:"lower"`
		Upper *float64 `json:"upper"`
	}{lower, upper})
}

// EncodeJSON writes the problem to w as indented JSON.
func (p *Problem) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
