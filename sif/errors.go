package sif

import "fmt"

// ErrorKind classifies the fatal conditions a parse can hit.
type ErrorKind uint8

const (
	ErrUnknownSection    ErrorKind = iota // indicator keyword not in the alias table
	ErrUnexpectedDataRow                  // data outside any section, or content after ENDATA
	ErrMalformedDataRow                   // token count or marker wrong for the section
	ErrInvalidNumber                      // value token is not a decimal number
	ErrDuplicateRow                       // ROWS name defined twice
	ErrUnknownReference                   // name used before its definition
	ErrInvalidBoundSpec                   // bound marker given a value it does not accept
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownSection:
		return "unknown section"
	case ErrUnexpectedDataRow:
		return "unexpected data row"
	case ErrMalformedDataRow:
		return "malformed data row"
	case ErrInvalidNumber:
		return "invalid number"
	case ErrDuplicateRow:
		return "duplicate row"
	case ErrUnknownReference:
		return "unknown reference"
	case ErrInvalidBoundSpec:
		return "invalid bound spec"
	default:
		return "unknown error"
	}
}

// ParseError is the single error type returned by Parse. It carries
// the 1-based line number and the section that was active when the
// failure occurred.
type ParseError struct {
	Kind    ErrorKind
	Line    int
	Section Section
	Message string
}

func (e *ParseError) Error() string {
	if e.Section == SectionNone {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s (in %s)", e.Line, e.Message, e.Section)
}

func errf(kind ErrorKind, line int, sec Section, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Line:    line,
		Section: sec,
		Message: fmt.Sprintf(format, args...),
	}
}
