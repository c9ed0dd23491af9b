package ast

// This file collects the small set of node constructors the splitter
// uses to synthesize new AST nodes. They are thin names over the
// exported New* constructors, kept together so the splitter's "new
// node" allocation sites read declaratively and stay easy to audit
// against the aggregate-decomposition table.

// Agg is the aggregate factory.
func Agg(kind AggKind, distinct bool, arg Node) *Aggregate {
	return NewAggregate(kind, distinct, arg)
}

// Col is the column factory.
func Col(name string) *Column {
	return NewColumn(name)
}

// AliasOf is the alias factory. Named AliasOf, not Alias, to avoid
// colliding with the *Alias type.
func AliasOf(name string, child Node) *Alias {
	return NewAlias(name, child)
}

// Op is the binary-operation factory.
func Op(kind OpKind, left, right Node) *Operation {
	return NewOperation(kind, left, right)
}

// Fn is the function factory.
func Fn(kind FuncKind, args ...Node) *Function {
	return NewFunction(kind, args...)
}

// Tbl is the table factory.
func Tbl(name string) *Table {
	return NewTable(name)
}
