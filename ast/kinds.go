package ast

// OpKind identifies a binary operation. It is a closed set; the splitter
// only ever synthesizes OpMultiply and OpDivide, but the AST model as a
// whole needs to be able to represent whatever binary operations a
// source WHERE/HAVING clause used, since the map AST is produced by
// cloning the source tree rather than rebuilding it.
type OpKind int

const (
	OpInvalid OpKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpAnd
	OpOr
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpConcat
)

var opText = map[OpKind]string{
	OpAdd: "+", OpSubtract: "-", OpMultiply: "*", OpDivide: "/",
	OpModulo: "%", OpAnd: "AND", OpOr: "OR", OpEqual: "=",
	OpNotEqual: "<>", OpLess: "<", OpLessEqual: "<=",
	OpGreater: ">", OpGreaterEqual: ">=", OpConcat: "||",
}

func (k OpKind) String() string {
	if s, ok := opText[k]; ok {
		return s
	}
	return "?op?"
}

// FuncKind identifies a scalar function. CAST is the only one the
// splitter synthesizes (to widen an AVG argument to DOUBLE, or to cast
// the reduce-side SUM of per-node counts to BIGINT); the rest exist so
// the AST model can represent
// whatever scalar functions appeared in the source projection list.
type FuncKind int

const (
	FuncInvalid FuncKind = iota
	FuncCast
	FuncCoalesce
	FuncUpper
	FuncLower
	FuncLength
	FuncAbs
	FuncRound
	FuncConcat
	FuncSubstring
)

var funcText = map[FuncKind]string{
	FuncCast: "CAST", FuncCoalesce: "COALESCE", FuncUpper: "UPPER",
	FuncLower: "LOWER", FuncLength: "LENGTH", FuncAbs: "ABS",
	FuncRound: "ROUND", FuncConcat: "CONCAT", FuncSubstring: "SUBSTRING",
}

func (k FuncKind) String() string {
	if s, ok := funcText[k]; ok {
		return s
	}
	return "?func?"
}

// AggKind identifies an aggregate function: AVG, SUM, MIN, MAX, COUNT,
// or COUNT(*), the set with a known map/reduce decomposition. Any other
// value encountered by the splitter is an UnsupportedAggregate error,
// not a panic — see the split package.
type AggKind int

const (
	AggInvalid AggKind = iota
	AggAvg
	AggSum
	AggMin
	AggMax
	AggCount
	AggCountAll
)

var aggText = map[AggKind]string{
	AggAvg: "AVG", AggSum: "SUM", AggMin: "MIN", AggMax: "MAX",
	AggCount: "COUNT", AggCountAll: "COUNT",
}

func (k AggKind) String() string {
	if s, ok := aggText[k]; ok {
		return s
	}
	return "?agg?"
}

// Direction is the sort direction of an ORDER BY term.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// NullsOrder controls where NULL values sort relative to non-NULL values.
type NullsOrder int

const (
	NullsFirst NullsOrder = iota
	NullsLast
)
