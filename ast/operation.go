package ast

import "strings"

// Operation is a binary operator expression: `left op right`.
type Operation struct {
	Op          OpKind
	Left, Right Node
}

// NewOperation returns a binary operation node.
func NewOperation(op OpKind, left, right Node) *Operation {
	return &Operation{Op: op, Left: left, Right: right}
}

// Multiply and Divide are the two binary operations the splitter itself
// synthesizes, to recombine AVG's two map-side columns into a weighted
// average on the reduce side.
func Multiply(left, right Node) *Operation { return NewOperation(OpMultiply, left, right) }
func Divide(left, right Node) *Operation   { return NewOperation(OpDivide, left, right) }

func (o *Operation) text(dst *strings.Builder) {
	dst.WriteByte('(')
	o.Left.text(dst)
	dst.WriteByte(' ')
	dst.WriteString(o.Op.String())
	dst.WriteByte(' ')
	o.Right.text(dst)
	dst.WriteByte(')')
}

func (o *Operation) Equals(n Node) bool {
	other, ok := n.(*Operation)
	return ok && other.Op == o.Op && other.Left.Equals(o.Left) && other.Right.Equals(o.Right)
}

func (o *Operation) Clone() Node {
	return &Operation{Op: o.Op, Left: o.Left.Clone(), Right: o.Right.Clone()}
}

func (o *Operation) walk(v Visitor) {
	Walk(v, o.Left)
	Walk(v, o.Right)
}
