package sif

import "strconv"

// pair is one (name, value) field group from a data row.
type pair struct {
	name  string
	value float64
}

// parseNumber parses a value token as a signed decimal number.
func parseNumber(tok string, line int, sec Section) (float64, *ParseError) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errf(ErrInvalidNumber, line, sec, "invalid number %q", tok)
	}
	return v, nil
}

// parsePairs groups tokens into one or two (name, value) pairs. The
// caller has already stripped any leading marker or name field, so an
// even count of 2 or 4 tokens is the only valid arity.
func parsePairs(tokens []string, line int, sec Section) ([]pair, *ParseError) {
	switch len(tokens) {
	case 2, 4:
	default:
		return nil, errf(ErrMalformedDataRow, line, sec,
			"want one or two (name, value) pairs, got %d trailing fields", len(tokens))
	}

	pairs := make([]pair, 0, 2)
	for i := 0; i < len(tokens); i += 2 {
		v, perr := parseNumber(tokens[i+1], line, sec)
		if perr != nil {
			return nil, perr
		}
		pairs = append(pairs, pair{name: tokens[i], value: v})
	}
	return pairs, nil
}
