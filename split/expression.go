package split

import "github.com/wendigo/ignite/ast"

// splitProjection transforms the projection at mapExprs[idx] into its
// map-side form in place, appending a second map-side column when idx
// is an AVG (mapExprs is grown, never shrunk), and — when idx falls
// within the user-visible range — writes the corresponding reduce-side
// expression into reduceSlots[idx].
//
// idx beyond len(reduceSlots) is a clause-helper slot (typically a
// HAVING expression) with no reduce-side projection of its own; it is
// still fully split so that the reduce query's WHERE clause can
// reference its map-side alias.
func splitProjection(mapExprs *[]ast.Node, reduceSlots []ast.Node, idx int) error {
	item := (*mapExprs)[idx]
	child, userAlias, hadAlias := ast.Unalias(item)

	if agg, ok := child.(*ast.Aggregate); ok {
		return splitAggregate(mapExprs, reduceSlots, idx, agg, userAlias, hadAlias)
	}
	return splitPlain(mapExprs, reduceSlots, idx, child, userAlias, hadAlias)
}

// splitPlain handles a non-aggregate expression: it only needs a
// map-side alias (reusing the user's alias, or the bare column's own
// name, or a synthesized one) and a reduce-side reference to that
// alias. The expression is projected whole, unsplit — this is also how
// a HAVING conjunct like `COUNT(*) > 5` reaches the map side: its top
// node is an Operation, not an Aggregate, so it is carried over as-is
// rather than being recursively decomposed.
func splitPlain(mapExprs *[]ast.Node, reduceSlots []ast.Node, idx int, child ast.Node, userAlias string, hadAlias bool) error {
	name := userAlias
	if !hadAlias {
		if col, isCol := child.(*ast.Column); isCol {
			name = col.Name
		} else {
			name = columnName(idx)
		}
	}
	(*mapExprs)[idx] = ast.AliasOf(name, child)

	if idx < len(reduceSlots) {
		reduceSlots[idx] = ast.Col(name)
	}
	return nil
}

// splitAggregate handles a top-level aggregate, dispatching on its kind
// to the matching algebraic decomposition. m is the map-side alias for
// the (or the primary, for AVG) map aggregate column.
func splitAggregate(mapExprs *[]ast.Node, reduceSlots []ast.Node, idx int, agg *ast.Aggregate, userAlias string, hadAlias bool) error {
	if agg.Arg != nil && ast.ContainsAggregate(agg.Arg) {
		return &InvariantViolated{
			Message: "aggregate found nested inside another aggregate's argument",
			Node:    agg,
		}
	}

	m := columnName(idx)

	if agg.Kind == ast.AggAvg {
		return splitAvg(mapExprs, reduceSlots, idx, agg, m, userAlias, hadAlias)
	}

	var mapAgg ast.Node
	var reduceExpr ast.Node

	switch agg.Kind {
	case ast.AggSum, ast.AggMin, ast.AggMax:
		// SUM(SUM(x)), MIN(MIN(x)), MAX(MAX(x)): distributive as-is.
		mapAgg = ast.Agg(agg.Kind, agg.Distinct, agg.Arg)
		reduceExpr = ast.Agg(agg.Kind, agg.Distinct, ast.Col(m))
	case ast.AggCount:
		// CAST(SUM(COUNT(x)) AS BIGINT). DISTINCT stays on the map-side
		// COUNT only: the map side already deduplicated per node, so
		// the reduce SUM must not be DISTINCT.
		mapAgg = ast.Agg(ast.AggCount, agg.Distinct, agg.Arg)
		reduceExpr = ast.Cast(ast.Agg(ast.AggSum, false, ast.Col(m)), "BIGINT")
	case ast.AggCountAll:
		// CAST(SUM(COUNT(*)) AS BIGINT).
		mapAgg = ast.NewCountAll()
		reduceExpr = ast.Cast(ast.Agg(ast.AggSum, false, ast.Col(m)), "BIGINT")
	default:
		return &UnsupportedAggregate{Kind: agg.Kind, Node: agg}
	}

	if _, isAlias := mapAgg.(*ast.Alias); isAlias {
		return &InvariantViolated{Message: "map aggregate emerged already wrapped in an alias", Node: mapAgg}
	}

	(*mapExprs)[idx] = ast.AliasOf(m, mapAgg)
	if hadAlias {
		reduceExpr = ast.AliasOf(userAlias, reduceExpr)
	}
	if idx < len(reduceSlots) {
		reduceSlots[idx] = reduceExpr
	}
	return nil
}

// splitAvg implements the AVG row of the decomposition table: the only
// case that grows the projection list. AVG(x) becomes two map columns —
// AVG(CAST(x AS DOUBLE)) at the original slot, and a COUNT(x) appended
// at the end — and a reduce expression that recombines them as a
// weighted average: SUM(avg*count) / SUM(count).
//
// The appended COUNT's alias is computed from len(*mapExprs) *after*
// the primary slot has been rewritten in place (it is not itself
// appended yet): this guarantees the appended alias never collides with
// an index a prior iteration already consumed, since map indices are
// handed out monotonically.
func splitAvg(mapExprs *[]ast.Node, reduceSlots []ast.Node, idx int, agg *ast.Aggregate, m string, userAlias string, hadAlias bool) error {
	widened := ast.Cast(agg.Arg, "DOUBLE")
	mapAvg := ast.Agg(ast.AggAvg, agg.Distinct, widened)
	(*mapExprs)[idx] = ast.AliasOf(m, mapAvg)

	c := columnName(len(*mapExprs))
	mapCount := ast.Agg(ast.AggCount, agg.Distinct, agg.Arg)
	*mapExprs = append(*mapExprs, ast.AliasOf(c, mapCount))

	sumUp := ast.Agg(ast.AggSum, false, ast.Multiply(ast.Col(m), ast.Col(c)))
	sumDown := ast.Agg(ast.AggSum, false, ast.Col(c))
	var reduceExpr ast.Node = ast.Divide(sumUp, sumDown)

	if hadAlias {
		reduceExpr = ast.AliasOf(userAlias, reduceExpr)
	}
	if idx < len(reduceSlots) {
		reduceSlots[idx] = reduceExpr
	}
	return nil
}
