package ast

import "strings"

// Table is a FROM-clause table reference. Joins and subqueries are out
// of scope; a Select's From is always a single Table.
type Table struct {
	Schema string
	Name   string
}

// NewTable returns an unqualified table reference.
func NewTable(name string) *Table {
	return &Table{Name: name}
}

// NewQualifiedTable returns a schema-qualified table reference.
func NewQualifiedTable(schema, name string) *Table {
	return &Table{Schema: schema, Name: name}
}

func (t *Table) text(dst *strings.Builder) {
	if t.Schema != "" {
		dst.WriteString(QuoteID(t.Schema))
		dst.WriteByte('.')
	}
	dst.WriteString(QuoteID(t.Name))
}

func (t *Table) Equals(n Node) bool {
	o, ok := n.(*Table)
	return ok && *o == *t
}

func (t *Table) Clone() Node {
	cp := *t
	return &cp
}

func (t *Table) walk(v Visitor) {}
