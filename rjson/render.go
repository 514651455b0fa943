package rjson

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Render returns the canonical text form of a value. The form is fixed:
// undefined, Null, true/false, decimal numbers, double-quoted strings,
// [a, b, c] arrays, and {"k" : v} objects in insertion order. Comments are
// metadata and never rendered. The output is not guaranteed to be strict
// JSON; see EncodeJSON for interchange.
func Render(v *Value) string {
	var sb strings.Builder
	render(&sb, v)
	return sb.String()
}

// String returns the canonical text form of the value.
func (v *Value) String() string {
	return Render(v)
}

// Write renders the value to w.
func Write(w io.Writer, v *Value) error {
	_, err := io.WriteString(w, Render(v))
	return err
}

func render(sb *strings.Builder, v *Value) {
	if v == nil {
		sb.WriteString("undefined")
		return
	}

	switch v.kind {
	case KindUndefined:
		sb.WriteString("undefined")

	case KindNull:
		sb.WriteString("Null")

	case KindBool:
		if v.boolVal {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case KindInt:
		sb.WriteString(strconv.FormatInt(v.intVal, 10))

	case KindDouble:
		sb.WriteString(formatDouble(v.doubleVal))

	case KindString:
		renderString(sb, v.strVal)

	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			render(sb, e)
		}
		sb.WriteByte(']')

	case KindObject:
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderString(sb, m.name)
			sb.WriteString(" : ")
			render(sb, m.value)
		}
		sb.WriteByte('}')
	}
}

// formatDouble returns the shortest decimal form that round-trips, with a
// forced .0 so a double never reads back as an int.
func formatDouble(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// renderString writes s double-quoted, escaping the characters the lexer
// accepts as escapes.
func renderString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		case '\t':
			sb.WriteString("\\t")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
