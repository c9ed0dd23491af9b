package split

import (
	"golang.org/x/exp/slices"

	"github.com/wendigo/ignite/assemble"
	"github.com/wendigo/ignite/ast"
)

// Split rewrites source into a map query/reduce query pair implementing
// two-stage map/reduce execution. source is never mutated; params is
// passed through verbatim to the single map entry the returned artifact
// carries.
func Split(source *ast.Select, params []any) (*assemble.TwoStepQuery, error) {
	n := newNamer()

	mapQry := source.Clone().(*ast.Select)
	reduceQry := ast.NewSelect(ast.Tbl(n.mergeTable()))

	mapExps := mapQry.Projections
	reduceSlots := make([]ast.Node, source.Size)

	frozen := len(mapExps)
	for i := 0; i < frozen; i++ {
		if err := splitProjection(&mapExps, reduceSlots, i); err != nil {
			return nil, err
		}
	}

	mapQry.Projections = mapExps
	mapQry.Size = len(mapExps)
	mapQry.HavingColumn = -1
	mapQry.Distinct = false
	mapQry.Limit = nil
	mapQry.Offset = nil

	reduceQry.Projections = reduceSlots
	reduceQry.Size = len(reduceSlots)
	reduceQry.HavingColumn = -1

	if len(source.GroupBy) > 0 {
		mapQry.GroupBy = slices.Clone(source.GroupBy)
		reduceQry.GroupBy = slices.Clone(source.GroupBy)
	} else {
		mapQry.GroupBy = nil
	}

	if source.HasHaving() {
		havingIdx := source.HavingColumn
		reduceQry.Where = ast.Col(columnName(havingIdx))
	}

	if len(source.OrderBy) > 0 {
		reduceQry.OrderBy = make([]ast.OrderItem, len(source.OrderBy))
		for i, o := range source.OrderBy {
			slot := mapQry.Projections[o.Sort.ColumnIndex]
			var aliasName string
			if _, name, wasAlias := ast.Unalias(slot); wasAlias {
				aliasName = name
			} else {
				// splitProjection always produces an *Alias for every
				// projection slot it touches; a non-alias here means
				// the source's own OrderBy indexed outside the range
				// the splitter rewrote.
				aliasName = ast.String(slot)
			}
			reduceQry.OrderBy[i] = ast.OrderItem{
				Sort:   o.Sort,
				Target: ast.Col(aliasName),
			}
		}
	}

	if source.Limit != nil {
		l := *source.Limit
		reduceQry.Limit = &l
	}
	if source.Offset != nil {
		o := *source.Offset
		reduceQry.Offset = &o
	}
	reduceQry.Distinct = source.Distinct

	mapSQL := ast.String(mapQry)
	reduceSQL := ast.String(reduceQry)

	return &assemble.TwoStepQuery{
		ReduceSQL: reduceSQL,
		Entries: []assemble.MapEntry{
			{MergeTable: n.mergeTable(), SQL: mapSQL, Params: params},
		},
	}, nil
}
