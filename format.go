// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import (
	"strconv"
	"strings"
)

// Plain renders v the way "=" does: strings print without parentheses,
// names without a leading slash, reals always show at least one
// fractional digit, and procedures/arrays print recursively using the
// same rule for their elements.
func Plain(v Value) string { return render(v, false) }

// PS renders v the way "==" does: strings are parenthesized, literal
// names keep their leading slash, and procedures/arrays print
// recursively in PostScript source form.
func PS(v Value) string { return render(v, true) }

func render(v Value, ps bool) string {
	switch t := v.(type) {
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Real:
		return formatReal(float64(t))
	case Boolean:
		if t {
			return "true"
		}
		return "false"
	case String:
		if ps {
			return "(" + escapeString(t.Bytes()) + ")"
		}
		return string(t.Bytes())
	case Name:
		if ps && !t.Executable {
			return "/" + t.Text
		}
		return t.Text
	case Operator:
		return t.name
	case Mark:
		return "-mark-"
	case Array:
		var parts []string
		for _, e := range t.Values() {
			parts = append(parts, render(e, ps))
		}
		return "[" + strings.Join(parts, " ") + "]"
	case Procedure:
		var parts []string
		for _, e := range t.Items() {
			parts = append(parts, render(e, ps))
		}
		return "{" + strings.Join(parts, " ") + "}"
	case Dict:
		return "-dict" + strconv.Itoa(t.Len()) + "-"
	default:
		return "-unknown-"
	}
}

// formatReal produces the shortest decimal that round-trips to f, with a
// forced trailing ".0" when that shortest form would otherwise look
// like an integer (spec: "reals with at least one fractional digit").
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// escapeString renders b as the contents of a "(...)" PostScript string
// literal. Parentheses and backslashes are always escaped, rather than
// only the unbalanced ones: the buffer may hold arbitrary bytes written
// through putinterval, so there is no guarantee left-over parens nest,
// and escaping unconditionally keeps the result re-parseable either way.
func escapeString(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		switch c {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
