package config

import (
	"fmt"

	"github.com/wendigo/ignite/ast"
)

var aggKinds = map[string]ast.AggKind{
	"avg":        ast.AggAvg,
	"sum":        ast.AggSum,
	"min":        ast.AggMin,
	"max":        ast.AggMax,
	"count":      ast.AggCount,
	"count_all":  ast.AggCountAll,
	"count(*)":   ast.AggCountAll,
	"count_star": ast.AggCountAll,
}

var compareOps = map[string]ast.OpKind{
	"=":  ast.OpEqual,
	"<>": ast.OpNotEqual,
	"!=": ast.OpNotEqual,
	"<":  ast.OpLess,
	"<=": ast.OpLessEqual,
	">":  ast.OpGreater,
	">=": ast.OpGreaterEqual,
}

// Build turns a decoded Query into an ast.Select ready to hand to
// split.Split. It is the only place in this package that touches the
// ast factories: everything else here is plain YAML bookkeeping.
func Build(q *Query) (*ast.Select, error) {
	sel := ast.NewSelect(ast.Tbl(q.Table))
	sel.Distinct = q.Distinct

	exprs := make([]ast.Node, 0, len(q.Columns))
	for i, c := range q.Columns {
		node, err := buildColumn(c)
		if err != nil {
			return nil, fmt.Errorf("config: column %d: %w", i, err)
		}
		exprs = append(exprs, node)
	}
	sel.Size = len(exprs)
	sel.Projections = exprs
	sel.HavingColumn = -1

	if err := applyGroupBy(sel, q); err != nil {
		return nil, err
	}
	if err := applyHaving(sel, q); err != nil {
		return nil, err
	}
	if err := applyOrderBy(sel, q); err != nil {
		return nil, err
	}

	sel.Limit = q.Limit
	sel.Offset = q.Offset
	return sel, nil
}

func buildColumn(c ColumnSpec) (ast.Node, error) {
	var expr ast.Node
	switch {
	case c.Agg != "":
		kind, ok := aggKinds[c.Agg]
		if !ok {
			return nil, fmt.Errorf("unknown aggregate %q", c.Agg)
		}
		if kind == ast.AggCountAll {
			expr = ast.NewCountAll()
		} else {
			if c.Arg == "" {
				return nil, fmt.Errorf("aggregate %q requires arg", c.Agg)
			}
			expr = ast.Agg(kind, c.Distinct, ast.Col(c.Arg))
		}
	case c.Column != "":
		expr = ast.Col(c.Column)
	default:
		return nil, fmt.Errorf("column entry needs either column or agg")
	}
	if c.Alias != "" {
		expr = ast.AliasOf(c.Alias, expr)
	}
	return expr, nil
}

func applyGroupBy(sel *ast.Select, q *Query) error {
	for _, idx := range q.GroupBy {
		if idx < 0 || idx >= sel.Size {
			return fmt.Errorf("config: group_by index %d out of range", idx)
		}
	}
	if len(q.GroupBy) > 0 {
		sel.GroupBy = append([]int(nil), q.GroupBy...)
	}
	return nil
}

func applyHaving(sel *ast.Select, q *Query) error {
	if q.Having == nil {
		return nil
	}
	if q.Having.Column < 0 || q.Having.Column >= sel.Size {
		return fmt.Errorf("config: having column %d out of range", q.Having.Column)
	}
	op, ok := compareOps[q.Having.Op]
	if !ok {
		return fmt.Errorf("config: unknown having operator %q", q.Having.Op)
	}
	target, _, _ := ast.Unalias(sel.Projections[q.Having.Column])
	expr := ast.Op(op, target.Clone(), ast.FloatLiteral(q.Having.Value))
	sel.Projections = append(sel.Projections, expr)
	sel.HavingColumn = len(sel.Projections) - 1
	return nil
}

func applyOrderBy(sel *ast.Select, q *Query) error {
	if len(q.OrderBy) == 0 {
		return nil
	}
	sel.OrderBy = make([]ast.OrderItem, len(q.OrderBy))
	for i, o := range q.OrderBy {
		if o.Column < 0 || o.Column >= sel.Size {
			return fmt.Errorf("config: order_by index %d out of range", o.Column)
		}
		dir := ast.Ascending
		if o.Desc {
			dir = ast.Descending
		}
		nulls := ast.NullsFirst
		if o.NullsLast {
			nulls = ast.NullsLast
		}
		sel.OrderBy[i] = ast.OrderItem{Sort: ast.Sort{ColumnIndex: o.Column, Direction: dir, Nulls: nulls}}
	}
	return nil
}
