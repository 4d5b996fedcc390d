// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import "io"

// Parse reads source text and returns the flat (but internally nested)
// sequence of Values it denotes: numbers, booleans-as-names, strings,
// names, and Procedure literals with their bodies already assembled.
// "[" and "]" pass through as ordinary executable Names; array
// construction happens at runtime via the mark convention, not here.
// An unmatched "{" or "}" is a syntaxerror, satisfying the invariant
// that a successfully parsed sequence contains no unmatched procedure
// delimiters.
func Parse(r io.Reader) ([]Value, error) {
	s := newScanner(r)
	values, err := parseSequence(s, 0)
	if err != nil {
		return nil, err
	}
	return values, nil
}

// closeKind is punctProcClose when parseSequence is collecting the
// body of an already-open "{", and 0 at the top level (where no close
// token is expected).
func parseSequence(s *scanner, closeKind punct) ([]Value, error) {
	var out []Value
	for {
		tok, err := s.scanToken()
		if err == io.EOF {
			if closeKind != 0 {
				return nil, syntaxErrorAt(s.line, s.col, "unterminated %s", openerFor(closeKind))
			}
			return out, nil
		} else if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case punct:
			switch t {
			case punctProcOpen:
				body, err := parseSequence(s, punctProcClose)
				if err != nil {
					return nil, err
				}
				out = append(out, newProcedure(body))
			case punctProcClose:
				if t != closeKind {
					return nil, syntaxErrorAt(s.line, s.col, "unmatched '%c'", byte(t))
				}
				return out, nil
			}
		default:
			out = append(out, tok)
		}
	}
}

func openerFor(closeKind punct) string {
	return "'{'"
}
