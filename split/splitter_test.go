package split

import (
	"errors"
	"testing"

	"github.com/wendigo/ignite/ast"
)

func int64p(v int64) *int64 { return &v }

func TestSplitSumWithGroupBy(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Projections = []ast.Node{
		ast.Col("region"),
		ast.AliasOf("total", ast.Agg(ast.AggSum, false, ast.Col("amount"))),
	}
	source.Size = 2
	source.GroupBy = []int{0}
	source.HavingColumn = -1

	result, err := Split(source, nil)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected exactly one map entry, got %d", len(result.Entries))
	}

	wantMap := `SELECT region AS region, SUM(amount) AS __C1 FROM orders GROUP BY region`
	wantReduce := `SELECT region, SUM(__C1) AS total FROM __T0 GROUP BY region`

	if result.Entries[0].SQL != wantMap {
		t.Errorf("map SQL = %q, want %q", result.Entries[0].SQL, wantMap)
	}
	if result.Entries[0].MergeTable != "__T0" {
		t.Errorf("merge table = %q, want __T0", result.Entries[0].MergeTable)
	}
	if result.ReduceSQL != wantReduce {
		t.Errorf("reduce SQL = %q, want %q", result.ReduceSQL, wantReduce)
	}
}

func TestSplitAvg(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Projections = []ast.Node{
		ast.AliasOf("avg_amt", ast.Agg(ast.AggAvg, false, ast.Col("amount"))),
	}
	source.Size = 1
	source.HavingColumn = -1

	result, err := Split(source, nil)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	wantMap := `SELECT AVG(CAST(amount AS DOUBLE)) AS __C0, COUNT(amount) AS __C1 FROM orders`
	wantReduce := `SELECT (SUM((__C0 * __C1)) / SUM(__C1)) AS avg_amt FROM __T0`

	if result.Entries[0].SQL != wantMap {
		t.Errorf("map SQL = %q, want %q", result.Entries[0].SQL, wantMap)
	}
	if result.ReduceSQL != wantReduce {
		t.Errorf("reduce SQL = %q, want %q", result.ReduceSQL, wantReduce)
	}
}

// TestSplitCountAllHavingOrderByLimitOffset exercises steps 5-9 of the
// query splitter together: GROUP BY, HAVING rehomed into the reduce
// WHERE clause, ORDER BY rehomed onto the map-side alias (the map query
// keeps the ORDER BY it cloned from the source), and LIMIT / OFFSET
// copied to the reduce query only.
func TestSplitCountAllHavingOrderByLimitOffset(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Projections = []ast.Node{
		ast.Col("region"),
		ast.AliasOf("cnt", ast.NewCountAll()),
		ast.Op(ast.OpGreater, ast.NewCountAll(), ast.IntLiteral(5)),
	}
	source.Size = 2
	source.GroupBy = []int{0}
	source.HavingColumn = 2
	source.OrderBy = []ast.OrderItem{
		{Sort: ast.Sort{ColumnIndex: 1, Direction: ast.Descending, Nulls: ast.NullsFirst}},
	}
	source.Limit = int64p(10)
	source.Offset = int64p(5)

	result, err := Split(source, nil)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	wantMap := `SELECT region AS region, COUNT(*) AS __C1, (COUNT(*) > 5) AS __C2 FROM orders GROUP BY region ORDER BY __C1 DESC NULLS FIRST`
	wantReduce := `SELECT region, CAST(SUM(__C1) AS BIGINT) AS cnt FROM __T0 WHERE __C2 GROUP BY region ORDER BY __C1 DESC NULLS FIRST LIMIT 10 OFFSET 5`

	if result.Entries[0].SQL != wantMap {
		t.Errorf("map SQL = %q, want %q", result.Entries[0].SQL, wantMap)
	}
	if result.ReduceSQL != wantReduce {
		t.Errorf("reduce SQL = %q, want %q", result.ReduceSQL, wantReduce)
	}
}

func TestSplitDistinct(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Distinct = true
	source.Projections = []ast.Node{ast.Col("region")}
	source.Size = 1
	source.HavingColumn = -1

	result, err := Split(source, nil)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	wantMap := `SELECT region AS region FROM orders`
	wantReduce := `SELECT DISTINCT region FROM __T0`

	if result.Entries[0].SQL != wantMap {
		t.Errorf("map SQL = %q, want %q", result.Entries[0].SQL, wantMap)
	}
	if result.ReduceSQL != wantReduce {
		t.Errorf("reduce SQL = %q, want %q", result.ReduceSQL, wantReduce)
	}
}

func TestSplitParamsPassThroughVerbatim(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Projections = []ast.Node{ast.Col("region")}
	source.Size = 1
	source.HavingColumn = -1

	params := []any{"us-east", 42}
	result, err := Split(source, params)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(result.Entries[0].Params) != 2 || result.Entries[0].Params[0] != "us-east" || result.Entries[0].Params[1] != 42 {
		t.Errorf("params not passed through verbatim: %v", result.Entries[0].Params)
	}
}

func TestSplitSourceNotMutated(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Projections = []ast.Node{
		ast.AliasOf("total", ast.Agg(ast.AggSum, false, ast.Col("amount"))),
	}
	source.Size = 1
	source.HavingColumn = -1

	before := source.Clone()
	if _, err := Split(source, nil); err != nil {
		t.Fatalf("Split: %v", err)
	}
	if !before.Equals(source) {
		t.Errorf("Split mutated its source select: before=%s after=%s", ast.String(before), ast.String(source))
	}
}

func TestSplitUnsupportedAggregate(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Projections = []ast.Node{
		ast.AliasOf("x", ast.Agg(ast.AggInvalid, false, ast.Col("amount"))),
	}
	source.Size = 1
	source.HavingColumn = -1

	_, err := Split(source, nil)
	var target *UnsupportedAggregate
	if !errors.As(err, &target) {
		t.Fatalf("expected *UnsupportedAggregate, got %v (%T)", err, err)
	}
}

func TestSplitNestedAggregateInvariant(t *testing.T) {
	source := ast.NewSelect(ast.Tbl("orders"))
	source.Projections = []ast.Node{
		ast.AliasOf("x", ast.Agg(ast.AggSum, false, ast.Agg(ast.AggCount, false, ast.Col("amount")))),
	}
	source.Size = 1
	source.HavingColumn = -1

	_, err := Split(source, nil)
	var target *InvariantViolated
	if !errors.As(err, &target) {
		t.Fatalf("expected *InvariantViolated, got %v (%T)", err, err)
	}
}
