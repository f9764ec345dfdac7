package sif

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblem_Model(t *testing.T) {
	p := mustParse(t, qpText)

	m, err := p.Model()
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2"}, m.ColNames)
	assert.Equal(t, []string{"r1", "r2"}, m.RowNames)
	assert.Equal(t, 2, m.NumVars())
	assert.Equal(t, 2, m.NumRows())

	assert.Equal(t, []float64{1.5, -2.0}, m.ColCosts)
	assert.Equal(t, 0.0, m.Offset)

	// r1 is G 2.0, r2 is L 6.0.
	assert.Equal(t, 2.0, m.RowLower[0])
	assert.True(t, math.IsInf(m.RowUpper[0], 1))
	assert.True(t, math.IsInf(m.RowLower[1], -1))
	assert.Equal(t, 6.0, m.RowUpper[1])

	// c1 has UP 20 over the 0 default; c2 is untouched.
	assert.Equal(t, []float64{0, 0}, m.ColLower)
	assert.Equal(t, 20.0, m.ColUpper[0])
	assert.True(t, math.IsInf(m.ColUpper[1], 1))

	assert.Equal(t, []Nonzero{
		{Row: 0, Col: 0, Val: 2.0},
		{Row: 1, Col: 0, Val: -1.0},
		{Row: 0, Col: 1, Val: 1.0},
		{Row: 1, Col: 1, Val: 2.0},
	}, m.ConstMatrix)

	assert.Equal(t, []Nonzero{
		{Row: 0, Col: 0, Val: 8.0},
		{Row: 0, Col: 1, Val: 2.0},
		{Row: 1, Col: 1, Val: 10.0},
	}, m.Hessian)
}

func TestProblem_Model_HessianLowerTriangleFlipped(t *testing.T) {
	p := mustParse(t, `ROWS
 N  obj
COLUMNS
    x1  obj  1.0
    x2  obj  1.0
QUADOBJ
    x2  x1  4.0
ENDATA
`)
	m, err := p.Model()
	require.NoError(t, err)
	assert.Equal(t, []Nonzero{{Row: 0, Col: 1, Val: 4.0}}, m.Hessian)
}

func TestProblem_Model_EqualityAndOffset(t *testing.T) {
	p := mustParse(t, `ROWS
 N  obj
 E  bal
COLUMNS
    x1  obj  3.0  bal  1.0
RHS
    rhs  bal  7.0  obj  2.5
ENDATA
`)
	m, err := p.Model()
	require.NoError(t, err)

	assert.Equal(t, []float64{7.0}, m.RowLower)
	assert.Equal(t, []float64{7.0}, m.RowUpper)
	assert.Equal(t, -2.5, m.Offset)
}

func TestProblem_Model_SkipsExtraFreeRows(t *testing.T) {
	p := mustParse(t, `ROWS
 N  obj
 N  free2
 G  r1
COLUMNS
    x1  obj  1.0  free2  9.0
    x1  r1  2.0
ENDATA
`)
	m, err := p.Model()
	require.NoError(t, err)

	assert.Equal(t, []string{"r1"}, m.RowNames)
	assert.Equal(t, []float64{1.0}, m.ColCosts)
	assert.Equal(t, []Nonzero{{Row: 0, Col: 0, Val: 2.0}}, m.ConstMatrix)
}

func TestProblem_Model_NoObjective(t *testing.T) {
	p := mustParse(t, `ROWS
 G  r1
COLUMNS
    x1  r1  2.0
ENDATA
`)
	_, err := p.Model()
	assert.ErrorIs(t, err, ErrNoObjective)
}
