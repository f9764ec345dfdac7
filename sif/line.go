package sif

import "strings"

// lineClass categorizes one physical input line.
type lineClass uint8

const (
	lineBlank     lineClass = iota // empty or whitespace-only
	lineComment                    // '*' in column 1
	lineIndicator                  // content starting in column 1
	lineData                       // indented content
)

// classifyLine is a pure function of the line text. Column 1 is
// significant: anything flush-left that is not a comment is an
// indicator candidate, and whether it names a real section is the
// dispatcher's problem, not the classifier's.
func classifyLine(raw string) lineClass {
	if strings.TrimSpace(raw) == "" {
		return lineBlank
	}
	switch raw[0] {
	case '*':
		return lineComment
	case ' ', '\t':
		return lineData
	default:
		return lineIndicator
	}
}
