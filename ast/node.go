// Package ast defines the immutable, deep-cloneable SQL expression and
// statement node model used by the query splitter.
//
// The node set is closed: Column, Literal, Alias, Operation, Function,
// Aggregate, Table, and Select are the only variants; a Sort is a plain
// field of Select, not a Node. Callers that
// need to add a new kind of node do so by extending this package, not by
// embedding arbitrary types that satisfy Node.
package ast

import "strings"

// Node is satisfied by every AST variant. It is deliberately small:
// rendering, structural equality, traversal, and deep copy are the only
// operations the splitter needs from a node it doesn't already know the
// concrete type of.
type Node interface {
	// text appends the canonical SQL rendering of the node to dst.
	text(dst *strings.Builder)

	// Equals reports whether n and the receiver are structurally
	// identical (same variant, same fields, recursively).
	Equals(n Node) bool

	// Clone returns a deep copy with fresh node identity. Clone never
	// shares mutable state with the receiver.
	Clone() Node

	// walk is used internally by Walk to recurse into children.
	walk(v Visitor)
}

// String renders n to canonical SQL text.
func String(n Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.text(&b)
	return b.String()
}

// Visitor is implemented by callers of Walk. Visit is invoked for every
// node encountered in depth-first order; if the returned Visitor is
// non-nil, traversal continues into the node's children using it.
type Visitor interface {
	Visit(Node) Visitor
}

// Walk traverses n and its children in depth-first order, calling
// v.Visit for each node. See go/ast.Walk for the equivalent stdlib
// idiom this mirrors.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	w := v.Visit(n)
	if w != nil {
		n.walk(w)
	}
}

// visitFunc adapts a plain function to the Visitor interface.
type visitFunc func(Node) bool

func (f visitFunc) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect calls fn for every node reachable from n in depth-first order.
// Traversal into a node's children stops wherever fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	Walk(visitFunc(fn), n)
}

// ContainsAggregate reports whether n or any of its descendants is an
// *Aggregate. It is used by the splitter to enforce the
// aggregate-non-nesting invariant (spec §3): aggregate nodes must never
// appear nested inside another aggregate's argument.
func ContainsAggregate(n Node) bool {
	found := false
	Inspect(n, func(n Node) bool {
		if found {
			return false
		}
		if _, ok := n.(*Aggregate); ok {
			found = true
			return false
		}
		return true
	})
	return found
}
