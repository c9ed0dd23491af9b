package ast

import "strings"

// Function is a scalar function call. CastType is only meaningful when
// Kind is FuncCast, in which case Args holds exactly the one expression
// being cast.
type Function struct {
	Kind     FuncKind
	Args     []Node
	CastType string
}

// NewFunction returns a function call with the given arguments.
func NewFunction(kind FuncKind, args ...Node) *Function {
	return &Function{Kind: kind, Args: args}
}

// Cast returns `CAST(arg AS typ)`. It is the one function the splitter
// synthesizes on its own: widening an AVG argument to DOUBLE before
// averaging it on the map side, and casting the reduce-side SUM of
// per-node COUNT/COUNT(*) values back to BIGINT.
func Cast(arg Node, typ string) *Function {
	return &Function{Kind: FuncCast, Args: []Node{arg}, CastType: typ}
}

func (f *Function) text(dst *strings.Builder) {
	if f.Kind == FuncCast {
		dst.WriteString("CAST(")
		if len(f.Args) > 0 {
			f.Args[0].text(dst)
		}
		dst.WriteString(" AS ")
		dst.WriteString(f.CastType)
		dst.WriteByte(')')
		return
	}
	dst.WriteString(f.Kind.String())
	dst.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			dst.WriteString(", ")
		}
		a.text(dst)
	}
	dst.WriteByte(')')
}

func (f *Function) Equals(n Node) bool {
	o, ok := n.(*Function)
	if !ok || o.Kind != f.Kind || o.CastType != f.CastType || len(o.Args) != len(f.Args) {
		return false
	}
	for i := range f.Args {
		if !o.Args[i].Equals(f.Args[i]) {
			return false
		}
	}
	return true
}

func (f *Function) Clone() Node {
	cp := &Function{Kind: f.Kind, CastType: f.CastType}
	if f.Args != nil {
		cp.Args = make([]Node, len(f.Args))
		for i, a := range f.Args {
			cp.Args[i] = a.Clone()
		}
	}
	return cp
}

func (f *Function) walk(v Visitor) {
	for _, a := range f.Args {
		Walk(v, a)
	}
}
