package sif

import "math"

// RowKind represents the type code of a row in the ROWS section.
type RowKind uint8

const (
	RowN RowKind = iota // free row, conventionally the objective
	RowG                // >= constraint
	RowL                // <= constraint
	RowE                // = constraint
)

// String returns the single-letter SIF code.
func (k RowKind) String() string {
	switch k {
	case RowN:
		return "N"
	case RowG:
		return "G"
	case RowL:
		return "L"
	case RowE:
		return "E"
	default:
		return "?"
	}
}

var rowKinds = map[string]RowKind{
	"N": RowN,
	"G": RowG,
	"L": RowL,
	"E": RowE,
}

// BoundKind represents the two-letter type code of a BOUNDS row.
type BoundKind uint8

const (
	BoundLO BoundKind = iota // explicit lower bound
	BoundUP                  // explicit upper bound
	BoundFX                  // fixed: lower = upper
	BoundFR                  // free: unbounded both sides
	BoundMI                  // lower bound of -inf
	BoundPL                  // upper bound of +inf (the default)
)

// String returns the two-letter SIF code.
func (k BoundKind) String() string {
	switch k {
	case BoundLO:
		return "LO"
	case BoundUP:
		return "UP"
	case BoundFX:
		return "FX"
	case BoundFR:
		return "FR"
	case BoundMI:
		return "MI"
	case BoundPL:
		return "PL"
	default:
		return "??"
	}
}

var boundKinds = map[string]BoundKind{
	"LO": BoundLO,
	"UP": BoundUP,
	"FX": BoundFX,
	"FR": BoundFR,
	"MI": BoundMI,
	"PL": BoundPL,
}

// Row is a named constraint or objective row.
type Row struct {
	Name string  `json:"name"`
	Kind RowKind `json:"kind"`
}

// Entry is one sparse coefficient of a column: the named row and the
// value the variable contributes to it.
type Entry struct {
	Row  string  `json:"row"`
	Coef float64 `json:"coef"`
}

// Column is a named variable with its sparse coefficients. Entries
// preserve the order of first mention in the COLUMNS section.
type Column struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Bound holds the resolved lower and upper bound of one variable.
// Infinite sides use math.Inf sentinels.
type Bound struct {
	Lower float64
	Upper float64
}

// DefaultBound returns the bound a variable has when the BOUNDS
// section never mentions it: lower 0, upper +inf.
func DefaultBound() Bound {
	return Bound{Lower: 0, Upper: math.Inf(1)}
}

// QuadTerm is one quadratic objective coefficient. Terms are kept in
// file order and are not symmetrized: (i,j) and (j,i) stay distinct
// unless the producer already normalized them.
type QuadTerm struct {
	Var1 string  `json:"var1"`
	Var2 string  `json:"var2"`
	Coef float64 `json:"coef"`
}

// Problem is a parsed SIF problem. Rows and Columns preserve file
// order; RHS and Bounds are keyed by row and variable name. A Problem
// returned by Parse is complete and should be treated as immutable.
type Problem struct {
	Name      string             `json:"name"`
	Rows      []Row              `json:"rows"`
	Columns   []Column           `json:"columns"`
	RHS       map[string]float64 `json:"rhs"`
	Bounds    map[string]Bound   `json:"bounds"`
	Quadratic []QuadTerm         `json:"quadratic,omitempty"`
}

// Row returns the named row, or nil if it does not exist.
func (p *Problem) Row(name string) *Row {
	for i := range p.Rows {
		if p.Rows[i].Name == name {
			return &p.Rows[i]
		}
	}
	return nil
}

// Column returns the named column, or nil if it does not exist.
func (p *Problem) Column(name string) *Column {
	for i := range p.Columns {
		if p.Columns[i].Name == name {
			return &p.Columns[i]
		}
	}
	return nil
}

// Objective returns the first free (N) row, or nil if the problem has
// none.
func (p *Problem) Objective() *Row {
	for i := range p.Rows {
		if p.Rows[i].Kind == RowN {
			return &p.Rows[i]
		}
	}
	return nil
}

// VariableBound returns the bound of the named variable, falling back
// to DefaultBound when the BOUNDS section never mentioned it.
func (p *Problem) VariableBound(name string) Bound {
	if b, ok := p.Bounds[name]; ok {
		return b
	}
	return DefaultBound()
}
