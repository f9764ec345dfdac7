package sif

import (
	"math"
	"strings"
)

// parser holds the dispatcher state and the problem under
// construction for one Parse call.
type parser struct {
	problem *Problem
	section Section

	rowIdx  map[string]int
	colIdx  map[string]int
	nameSet bool
}

// Parse parses a complete SIF text buffer into a Problem.
//
// It runs a single forward pass over the input and fails fast: the
// first fatal condition aborts the parse and the partial problem is
// discarded. Each call is independent, so concurrent parses of
// separate buffers are safe.
func Parse(input string) (*Problem, error) {
	p := &parser{
		problem: &Problem{
			RHS:    make(map[string]float64),
			Bounds: make(map[string]Bound),
		},
		section: SectionNone,
		rowIdx:  make(map[string]int),
		colIdx:  make(map[string]int),
	}

	for i, raw := range strings.Split(input, "\n") {
		line := i + 1
		raw = strings.TrimSuffix(raw, "\r")

		switch classifyLine(raw) {
		case lineBlank, lineComment:
			continue
		case lineIndicator:
			if perr := p.indicator(line, raw); perr != nil {
				return nil, perr
			}
		case lineData:
			if perr := p.data(line, raw); perr != nil {
				return nil, perr
			}
		}
	}

	return p.problem, nil
}

// indicator handles a flush-left line: resolve it through the alias
// table and transition the dispatcher.
func (p *parser) indicator(line int, raw string) *ParseError {
	if p.section == SectionEnded {
		return errf(ErrUnexpectedDataRow, line, p.section,
			"content after ENDATA: %q", strings.TrimSpace(raw))
	}

	sec, rest, ok := resolveIndicator(raw)
	if !ok {
		return errf(ErrUnknownSection, line, p.section,
			"unknown section indicator %q", strings.Fields(raw)[0])
	}
	p.section = sec

	// The NAME card usually carries the problem name on the card
	// itself; a following data row is the fallback.
	if sec == SectionName && len(rest) > 0 && !p.nameSet {
		p.problem.Name = rest[0]
		p.nameSet = true
	}
	return nil
}

// data routes an indented line to the accumulator for the current
// section.
func (p *parser) data(line int, raw string) *ParseError {
	switch p.section {
	case SectionNone:
		return errf(ErrUnexpectedDataRow, line, p.section,
			"data row before any section indicator")
	case SectionEnded:
		return errf(ErrUnexpectedDataRow, line, p.section,
			"data row after ENDATA")
	}

	tokens := strings.Fields(raw)

	switch p.section {
	case SectionName:
		return p.nameRow(tokens)
	case SectionRows:
		return p.rowsRow(line, tokens)
	case SectionColumns:
		return p.columnsRow(line, tokens)
	case SectionRHS:
		return p.rhsRow(line, tokens)
	case SectionBounds:
		return p.boundsRow(line, tokens)
	case SectionQuadratic:
		return p.quadraticRow(line, tokens)
	default:
		// Stub sections (RANGES, START POINT, ELEMENT/GROUP
		// TYPE/USES, OBJECT BOUNDS): tokenized and discarded.
		return nil
	}
}

// nameRow takes the first token as the problem name if the NAME card
// did not already supply one; everything after that is ignored.
func (p *parser) nameRow(tokens []string) *ParseError {
	if !p.nameSet {
		p.problem.Name = tokens[0]
		p.nameSet = true
	}
	return nil
}

// rowsRow handles "kind name" rows: N/G/L/E marker plus a unique row
// name.
func (p *parser) rowsRow(line int, tokens []string) *ParseError {
	if len(tokens) != 2 {
		return errf(ErrMalformedDataRow, line, p.section,
			"want row kind and name, got %d fields", len(tokens))
	}
	kind, ok := rowKinds[tokens[0]]
	if !ok {
		return errf(ErrMalformedDataRow, line, p.section,
			"unknown row kind %q", tokens[0])
	}
	name := tokens[1]
	if _, dup := p.rowIdx[name]; dup {
		return errf(ErrDuplicateRow, line, p.section,
			"row %q already defined", name)
	}
	p.rowIdx[name] = len(p.problem.Rows)
	p.problem.Rows = append(p.problem.Rows, Row{Name: name, Kind: kind})
	return nil
}

// columnsRow handles "column row value [row value]" rows. The column
// keeps the position of its first mention; every referenced row must
// already exist, which is what rejects column-major files.
func (p *parser) columnsRow(line int, tokens []string) *ParseError {
	if len(tokens) < 3 {
		return errf(ErrMalformedDataRow, line, p.section,
			"want column name and at least one (row, value) pair, got %d fields", len(tokens))
	}
	name := tokens[0]
	pairs, perr := parsePairs(tokens[1:], line, p.section)
	if perr != nil {
		return perr
	}

	ci, ok := p.colIdx[name]
	if !ok {
		ci = len(p.problem.Columns)
		p.colIdx[name] = ci
		p.problem.Columns = append(p.problem.Columns, Column{Name: name})
	}

	for _, pr := range pairs {
		if _, known := p.rowIdx[pr.name]; !known {
			return errf(ErrUnknownReference, line, p.section,
				"column %q references undefined row %q", name, pr.name)
		}
		p.problem.Columns[ci].Entries = append(p.problem.Columns[ci].Entries,
			Entry{Row: pr.name, Coef: pr.value})
	}
	return nil
}

// rhsRow handles "setname row value [row value]" rows. The set name
// is tokenized and ignored; later values for the same row overwrite
// earlier ones.
func (p *parser) rhsRow(line int, tokens []string) *ParseError {
	if len(tokens) < 3 {
		return errf(ErrMalformedDataRow, line, p.section,
			"want set name and at least one (row, value) pair, got %d fields", len(tokens))
	}
	pairs, perr := parsePairs(tokens[1:], line, p.section)
	if perr != nil {
		return perr
	}
	for _, pr := range pairs {
		if _, known := p.rowIdx[pr.name]; !known {
			return errf(ErrUnknownReference, line, p.section,
				"rhs references undefined row %q", pr.name)
		}
		p.problem.RHS[pr.name] = pr.value
	}
	return nil
}

// boundsRow handles "kind setname variable [value]" rows. A variable
// accumulates facets across lines, starting from the lower 0 / upper
// +inf default.
func (p *parser) boundsRow(line int, tokens []string) *ParseError {
	if len(tokens) < 3 || len(tokens) > 4 {
		return errf(ErrMalformedDataRow, line, p.section,
			"want bound kind, set name, variable and optional value, got %d fields", len(tokens))
	}
	kind, ok := boundKinds[tokens[0]]
	if !ok {
		return errf(ErrMalformedDataRow, line, p.section,
			"unknown bound kind %q", tokens[0])
	}
	variable := tokens[2]
	hasValue := len(tokens) == 4

	b, exists := p.problem.Bounds[variable]
	if !exists {
		b = DefaultBound()
	}

	switch kind {
	case BoundLO, BoundUP, BoundFX:
		if !hasValue {
			return errf(ErrInvalidBoundSpec, line, p.section,
				"%s bound for %q requires a value", kind, variable)
		}
		v, perr := parseNumber(tokens[3], line, p.section)
		if perr != nil {
			return perr
		}
		switch kind {
		case BoundLO:
			b.Lower = v
		case BoundUP:
			// TODO: decide whether a negative UP bound should drop
			// the lower bound to -inf (the CUTEst/MPS convention)
			// instead of keeping the 0 default.
			b.Upper = v
		case BoundFX:
			b.Lower, b.Upper = v, v
		}

	case BoundFR, BoundMI:
		if hasValue {
			return errf(ErrInvalidBoundSpec, line, p.section,
				"%s bound for %q does not take a value", kind, variable)
		}
		if kind == BoundFR {
			b.Lower, b.Upper = math.Inf(-1), math.Inf(1)
		} else {
			b.Lower = math.Inf(-1)
		}

	case BoundPL:
		// +inf upper is already the default; an explicit value is a
		// finite override.
		b.Upper = math.Inf(1)
		if hasValue {
			v, perr := parseNumber(tokens[3], line, p.section)
			if perr != nil {
				return perr
			}
			b.Upper = v
		}
	}

	p.problem.Bounds[variable] = b
	return nil
}

// quadraticRow handles "var1 var2 coef [var2 coef]" rows. Every named
// variable must already appear in COLUMNS. Terms are appended as
// written, without symmetry deduplication.
func (p *parser) quadraticRow(line int, tokens []string) *ParseError {
	if len(tokens) < 3 {
		return errf(ErrMalformedDataRow, line, p.section,
			"want variable and at least one (variable, coefficient) pair, got %d fields", len(tokens))
	}
	var1 := tokens[0]
	pairs, perr := parsePairs(tokens[1:], line, p.section)
	if perr != nil {
		return perr
	}
	if _, known := p.colIdx[var1]; !known {
		return errf(ErrUnknownReference, line, p.section,
			"quadratic term references undefined column %q", var1)
	}
	for _, pr := range pairs {
		if _, known := p.colIdx[pr.name]; !known {
			return errf(ErrUnknownReference, line, p.section,
				"quadratic term references undefined column %q", pr.name)
		}
		p.problem.Quadratic = append(p.problem.Quadratic,
			QuadTerm{Var1: var1, Var2: pr.name, Coef: pr.value})
	}
	return nil
}
