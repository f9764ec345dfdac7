package sif

import "strings"

// Section identifies which part of the file the dispatcher is in.
type Section uint8

const (
	SectionNone Section = iota // before any indicator card
	SectionName
	SectionRows
	SectionColumns
	SectionRHS
	SectionRanges
	SectionBounds
	SectionStartPoint
	SectionQuadratic
	SectionElementType
	SectionElementUses
	SectionGroupType
	SectionGroupUses
	SectionObjectBounds
	SectionEnded // after ENDATA; terminal
)

// String returns the canonical indicator keyword for the section.
func (s Section) String() string {
	switch s {
	case SectionNone:
		return "NONE"
	case SectionName:
		return "NAME"
	case SectionRows:
		return "ROWS"
	case SectionColumns:
		return "COLUMNS"
	case SectionRHS:
		return "RHS"
	case SectionRanges:
		return "RANGES"
	case SectionBounds:
		return "BOUNDS"
	case SectionStartPoint:
		return "START POINT"
	case SectionQuadratic:
		return "QUADRATIC"
	case SectionElementType:
		return "ELEMENT TYPE"
	case SectionElementUses:
		return "ELEMENT USES"
	case SectionGroupType:
		return "GROUP TYPE"
	case SectionGroupUses:
		return "GROUP USES"
	case SectionObjectBounds:
		return "OBJECT BOUNDS"
	case SectionEnded:
		return "ENDATA"
	default:
		return "UNKNOWN"
	}
}

// indicatorTable maps every recognized indicator keyword, including
// aliases and the two-word LANCELOT forms, to its section identity.
var indicatorTable = map[string]Section{
	"NAME": SectionName,

	"ROWS":        SectionRows,
	"GROUPS":      SectionRows,
	"CONSTRAINTS": SectionRows,

	"COLUMNS":   SectionColumns,
	"VARIABLES": SectionColumns,

	"RHS":       SectionRHS,
	"RHS'":      SectionRHS,
	"CONSTANTS": SectionRHS,

	"RANGES": SectionRanges,
	"BOUNDS": SectionBounds,

	"START POINT": SectionStartPoint,

	"QUADRATIC": SectionQuadratic,
	"HESSIAN":   SectionQuadratic,
	"QUADS":     SectionQuadratic,
	"QUADOBJ":   SectionQuadratic,
	"QSECTION":  SectionQuadratic,

	"ELEMENT TYPE": SectionElementType,
	"ELEMENT USES": SectionElementUses,
	"GROUP TYPE":   SectionGroupType,
	"GROUP USES":   SectionGroupUses,

	"OBJECT BOUNDS": SectionObjectBounds,

	"ENDATA": SectionEnded,
}

// resolveIndicator resolves an indicator line to its section. The
// two-word keywords are tried first so that "ELEMENT USES x" does not
// stop at a nonexistent "ELEMENT" section. rest holds any tokens
// after the keyword (the NAME card carries the problem name there).
func resolveIndicator(text string) (sec Section, rest []string, ok bool) {
	tokens := strings.Fields(text)
	if len(tokens) >= 2 {
		if s, found := indicatorTable[tokens[0]+" "+tokens[1]]; found {
			return s, tokens[2:], true
		}
	}
	if s, found := indicatorTable[tokens[0]]; found {
		return s, tokens[1:], true
	}
	return SectionNone, nil, false
}
