package ast

import (
	"strconv"
	"strings"
)

// reservedWords is the set of identifiers that must be quoted when used
// bare (unqualified) in rendered SQL text. It is intentionally small; a
// renderer targeting a specific SQL dialect would extend it.
var reservedWords = map[string]bool{
	"select": true, "from": true, "where": true, "group": true,
	"by": true, "having": true, "order": true, "limit": true,
	"offset": true, "distinct": true, "and": true, "or": true,
	"as": true, "table": true, "count": true, "sum": true,
	"avg": true, "min": true, "max": true, "cast": true,
}

func needsQuoting(id string) bool {
	if id == "" {
		return true
	}
	if reservedWords[strings.ToLower(id)] {
		return true
	}
	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return true
		}
	}
	return false
}

// QuoteID renders id as a double-quoted SQL identifier if it requires
// quoting, or returns it verbatim otherwise. Synthetic aliases produced by
// the splitter (the reserved __T/__C prefixes) are always valid bare
// identifiers and are therefore never quoted.
func QuoteID(id string) string {
	if !needsQuoting(id) {
		return id
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range id {
		if r == '"' {
			b.WriteByte('"')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteString produces a single-quoted SQL string literal, escaping
// embedded quotes by doubling them per the SQL standard.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			b.WriteByte('\'')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func appendInt(b *strings.Builder, v int64) {
	b.WriteString(strconv.FormatInt(v, 10))
}

func appendFloat(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}
