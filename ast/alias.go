package ast

import "strings"

// Alias introduces a named projection: `child AS name`. It is the only
// node variant that carries an output name, and the splitter's central
// invariant is that every map-query projection ends up wrapped in one
// with a unique, deterministic name.
type Alias struct {
	Name  string
	Child Node
}

// NewAlias wraps child in an alias named name.
func NewAlias(name string, child Node) *Alias {
	return &Alias{Name: name, Child: child}
}

func (a *Alias) text(dst *strings.Builder) {
	a.Child.text(dst)
	dst.WriteString(" AS ")
	dst.WriteString(QuoteID(a.Name))
}

func (a *Alias) Equals(n Node) bool {
	o, ok := n.(*Alias)
	return ok && o.Name == a.Name && o.Child.Equals(a.Child)
}

func (a *Alias) Clone() Node {
	return &Alias{Name: a.Name, Child: a.Child.Clone()}
}

func (a *Alias) walk(v Visitor) {
	Walk(v, a.Child)
}

// Unalias returns the child expression and the alias name if n is an
// *Alias, or n itself and "" otherwise. It is the inverse of NewAlias
// and is how the expression splitter unwraps a possibly-aliased
// projection before inspecting it.
func Unalias(n Node) (child Node, name string, wasAlias bool) {
	if a, ok := n.(*Alias); ok {
		return a.Child, a.Name, true
	}
	return n, "", false
}
