package sif

import (
	"errors"
	"math"
)

// Nonzero is one entry of a sparse matrix in triplet form.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Model is the solver-ready numeric form of a parsed problem:
//
//	minimize   ColCosts · x + Offset + 0.5 * x' * Q * x
//	subject to RowLower ≤ A·x ≤ RowUpper
//	           ColLower ≤ x ≤ ColUpper
//
// A is ConstMatrix and Q is Hessian, both in triplet form. Row
// indices count constraint rows only; free (N) rows are folded into
// the objective or skipped.
type Model struct {
	ColNames []string
	RowNames []string

	ColCosts []float64
	Offset   float64

	ColLower []float64
	ColUpper []float64
	RowLower []float64
	RowUpper []float64

	ConstMatrix []Nonzero
	Hessian     []Nonzero // upper triangular
}

// ErrNoObjective is returned by Model when the problem defines no
// free (N) row to minimize.
var ErrNoObjective = errors.New("sif: problem has no objective (N) row")

// Model converts the problem into its numeric standard form. The
// first N row becomes the objective; further N rows are free rows and
// contribute nothing. Rows without an RHS entry default to 0, and
// variables without bounds get the lower 0 / upper +inf default.
func (p *Problem) Model() (*Model, error) {
	obj := p.Objective()
	if obj == nil {
		return nil, ErrNoObjective
	}

	// Constraint rows keep file order; N rows are excluded.
	rowIdx := make(map[string]int, len(p.Rows))
	m := &Model{}
	for _, r := range p.Rows {
		if r.Kind == RowN {
			continue
		}
		rowIdx[r.Name] = len(m.RowNames)
		m.RowNames = append(m.RowNames, r.Name)

		rhs := p.RHS[r.Name]
		switch r.Kind {
		case RowG:
			m.RowLower = append(m.RowLower, rhs)
			m.RowUpper = append(m.RowUpper, math.Inf(1))
		case RowL:
			m.RowLower = append(m.RowLower, math.Inf(-1))
			m.RowUpper = append(m.RowUpper, rhs)
		case RowE:
			m.RowLower = append(m.RowLower, rhs)
			m.RowUpper = append(m.RowUpper, rhs)
		}
	}

	// An RHS on the objective row is a negated constant offset.
	if rhs, ok := p.RHS[obj.Name]; ok {
		m.Offset = -rhs
	}

	colIdx := make(map[string]int, len(p.Columns))
	for j, c := range p.Columns {
		colIdx[c.Name] = j
		m.ColNames = append(m.ColNames, c.Name)
		m.ColCosts = append(m.ColCosts, 0)

		b := p.VariableBound(c.Name)
		m.ColLower = append(m.ColLower, b.Lower)
		m.ColUpper = append(m.ColUpper, b.Upper)

		for _, e := range c.Entries {
			if e.Row == obj.Name {
				m.ColCosts[j] = e.Coef
				continue
			}
			i, constraint := rowIdx[e.Row]
			if !constraint {
				// Entry on a non-objective free row.
				continue
			}
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: i, Col: j, Val: e.Coef})
		}
	}

	for _, q := range p.Quadratic {
		i, j := colIdx[q.Var1], colIdx[q.Var2]
		if i > j {
			i, j = j, i
		}
		m.Hessian = append(m.Hessian, Nonzero{Row: i, Col: j, Val: q.Coef})
	}

	return m, nil
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int { return len(m.ColNames) }

// NumRows returns the number of constraint rows in the model.
func (m *Model) NumRows() int { return len(m.RowNames) }
