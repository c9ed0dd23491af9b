package ast

import "strings"

// Column is a schema-qualified or bare column reference. Name is the
// lookup name used to resolve the column against its source relation;
// Display is what gets rendered. They differ only for columns produced
// by the renderer's own quoting rules — in practice Display is always
// equal to Name for columns the splitter itself constructs, since
// synthetic aliases are always valid bare identifiers.
type Column struct {
	Schema  string
	Name    string
	Display string
}

// NewColumn returns a bare (unqualified) column reference.
func NewColumn(name string) *Column {
	return &Column{Name: name, Display: name}
}

// NewQualifiedColumn returns a schema-qualified column reference.
func NewQualifiedColumn(schema, name string) *Column {
	return &Column{Schema: schema, Name: name, Display: name}
}

func (c *Column) display() string {
	if c.Display != "" {
		return c.Display
	}
	return c.Name
}

func (c *Column) text(dst *strings.Builder) {
	if c.Schema != "" {
		dst.WriteString(QuoteID(c.Schema))
		dst.WriteByte('.')
	}
	dst.WriteString(QuoteID(c.display()))
}

func (c *Column) Equals(n Node) bool {
	o, ok := n.(*Column)
	return ok && o.Schema == c.Schema && o.Name == c.Name && o.display() == c.display()
}

func (c *Column) Clone() Node {
	cp := *c
	return &cp
}

func (c *Column) walk(v Visitor) {}
