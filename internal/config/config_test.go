package config

import (
	"strings"
	"testing"

	"github.com/wendigo/ignite/ast"
)

func TestLoadRequiresTableAndColumns(t *testing.T) {
	if _, err := Load(strings.NewReader(`columns: [{column: x}]`)); err == nil {
		t.Errorf("expected error for missing table")
	}
	if _, err := Load(strings.NewReader(`table: orders`)); err == nil {
		t.Errorf("expected error for missing columns")
	}
}

func TestLoadAndBuild(t *testing.T) {
	doc := `
table: orders
distinct: false
columns:
  - column: region
  - agg: sum
    arg: amount
    alias: total
group_by: [0]
order_by:
  - column: 1
    desc: true
limit: 10
offset: 5
`
	q, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sel, err := Build(q)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := `SELECT region, SUM(amount) AS total FROM orders GROUP BY region ORDER BY total DESC NULLS FIRST LIMIT 10 OFFSET 5`
	if got := ast.String(sel); got != want {
		t.Errorf("ast.String(sel) = %q, want %q", got, want)
	}
}

func TestBuildCountAll(t *testing.T) {
	q := &Query{
		Table:   "orders",
		Columns: []ColumnSpec{{Agg: "count_all", Alias: "n"}},
	}
	sel, err := Build(q)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := `SELECT COUNT(*) AS n FROM orders`
	if got := ast.String(sel); got != want {
		t.Errorf("ast.String(sel) = %q, want %q", got, want)
	}
}

func TestBuildHaving(t *testing.T) {
	q := &Query{
		Table: "orders",
		Columns: []ColumnSpec{
			{Column: "region"},
			{Agg: "count", Arg: "id", Alias: "cnt"},
		},
		GroupBy: []int{0},
		Having:  &HavingSpec{Column: 1, Op: ">", Value: 5},
	}
	sel, err := Build(q)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !sel.HasHaving() {
		t.Fatalf("expected HAVING to be present")
	}
	want := `(COUNT(id) > 5)`
	if got := ast.String(sel.HavingExpr()); got != want {
		t.Errorf("HavingExpr = %q, want %q", got, want)
	}
}

func TestBuildRejectsUnknownAggregate(t *testing.T) {
	q := &Query{
		Table:   "orders",
		Columns: []ColumnSpec{{Agg: "median", Arg: "x"}},
	}
	if _, err := Build(q); err == nil {
		t.Errorf("expected error for unknown aggregate")
	}
}

func TestBuildRejectsOutOfRangeGroupBy(t *testing.T) {
	q := &Query{
		Table:   "orders",
		Columns: []ColumnSpec{{Column: "x"}},
		GroupBy: []int{5},
	}
	if _, err := Build(q); err == nil {
		t.Errorf("expected error for out-of-range group_by index")
	}
}
