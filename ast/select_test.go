package ast

import (
	"fmt"
	"testing"
)

func simpleSelect() *Select {
	s := NewSelect(Tbl("orders"))
	s.Projections = []Node{
		AliasOf("region", Col("region")),
		AliasOf("total", Agg(AggSum, false, Col("amount"))),
	}
	s.Size = 2
	s.GroupBy = []int{0}
	return s
}

func TestSelectText(t *testing.T) {
	cases := []struct {
		build func() *Select
		want  string
	}{
		{
			func() *Select { return simpleSelect() },
			`SELECT region AS region, SUM(amount) AS total FROM orders GROUP BY region`,
		},
		{
			func() *Select {
				s := simpleSelect()
				s.Where = Op(OpGreater, Col("amount"), IntLiteral(0))
				return s
			},
			`SELECT region AS region, SUM(amount) AS total FROM orders WHERE (amount > 0) GROUP BY region`,
		},
		{
			func() *Select {
				s := simpleSelect()
				limit := int64(10)
				s.Limit = &limit
				return s
			},
			`SELECT region AS region, SUM(amount) AS total FROM orders GROUP BY region LIMIT 10`,
		},
		{
			func() *Select {
				s := simpleSelect()
				s.Distinct = true
				return s
			},
			`SELECT DISTINCT region AS region, SUM(amount) AS total FROM orders GROUP BY region`,
		},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			if got := String(c.build()); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

// TestOrderByTargetOverride exercises the mechanism split.Split relies
// on to rehome a reduce query's ORDER BY onto a map-side alias that
// differs from the reduce query's own projection alias at that index
// (the deliberately-occasionally-unsound behavior this AST model must
// support rather than silently "fix").
func TestOrderByTargetOverride(t *testing.T) {
	s := NewSelect(Tbl("orders"))
	s.Projections = []Node{AliasOf("c", Op(OpDivide, Col("__C0"), Col("__C1")))}
	s.Size = 1
	s.OrderBy = []OrderItem{
		{
			Sort:   Sort{ColumnIndex: 0, Direction: Descending, Nulls: NullsLast},
			Target: Col("__C0"),
		},
	}

	want := `SELECT (__C0 / __C1) AS c FROM orders ORDER BY __C0 DESC NULLS LAST`
	if got := String(s); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOrderBySelfReference(t *testing.T) {
	s := NewSelect(Tbl("orders"))
	s.Projections = []Node{AliasOf("region", Col("region"))}
	s.Size = 1
	s.OrderBy = []OrderItem{
		{Sort: Sort{ColumnIndex: 0, Direction: Ascending, Nulls: NullsFirst}},
	}

	want := `SELECT region AS region FROM orders ORDER BY region ASC NULLS FIRST`
	if got := String(s); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSelectCloneIndependence(t *testing.T) {
	s := simpleSelect()
	s.OrderBy = []OrderItem{{Sort: Sort{ColumnIndex: 0}, Target: Col("region")}}

	clone := s.Clone().(*Select)
	if !s.Equals(clone) {
		t.Fatalf("clone should equal original")
	}

	clone.OrderBy[0].Target.(*Column).Name = "other"
	if s.OrderBy[0].Target.(*Column).Name != "region" {
		t.Errorf("mutating clone's OrderBy target mutated original")
	}

	clone.GroupBy[0] = 99
	if s.GroupBy[0] != 0 {
		t.Errorf("mutating clone's GroupBy mutated original")
	}
}

func TestSelectEqualsDetectsOrderByDrift(t *testing.T) {
	a := simpleSelect()
	a.OrderBy = []OrderItem{{Sort: Sort{ColumnIndex: 0}, Target: Col("region")}}

	b := simpleSelect()
	b.OrderBy = []OrderItem{{Sort: Sort{ColumnIndex: 0}, Target: Col("other")}}

	if a.Equals(b) {
		t.Errorf("expected differing OrderBy targets to break equality")
	}

	c := simpleSelect()
	c.OrderBy = []OrderItem{{Sort: Sort{ColumnIndex: 0}}}
	if a.Equals(c) {
		t.Errorf("expected nil-vs-non-nil Target to break equality")
	}
}
