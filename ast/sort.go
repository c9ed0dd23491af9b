package ast

// Sort is a sort specification for one ORDER BY term: which projection
// slot it targets, plus direction and null ordering. It is a plain
// field type consulted by Select, not a node in the general
// Visitor dispatch.
type Sort struct {
	ColumnIndex int
	Direction   Direction
	Nulls       NullsOrder
}

// OrderItem pairs a Sort with an optional resolved render Target. When
// Target is nil, rendering resolves Sort.ColumnIndex against the owning
// Select's own Projections — correct for a self-consistent, freshly
// parsed source query. The splitter sets Target explicitly when
// building the reduce query's ORDER BY: the reduce query's sort must
// reference the *map*-side alias of the split projection, which in
// general is not the alias reduce's own projection list carries at
// that same index (an aggregate's reduce projection is re-aliased to
// the user's name, while its map alias stays the synthetic __C<i>).
// This is deliberately chosen rather than an oversight: it matches the
// grid query splitter this package's split algorithm is modeled on,
// which resolves ORDER BY the same way. When the sorted index names an
// aggregate, the reduce query therefore sorts by the map-side partial
// aggregate column, not by the reduced aggregate value.
type OrderItem struct {
	Sort   Sort
	Target Node
}

func orderText(target Node, s Sort) string {
	out := String(target)
	if s.Direction == Descending {
		out += " DESC"
	} else {
		out += " ASC"
	}
	if s.Nulls == NullsLast {
		out += " NULLS LAST"
	} else {
		out += " NULLS FIRST"
	}
	return out
}
