package ast

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Select is the compound statement node. Projections holds the
// user-visible output columns (indices [0, Size)) followed by any
// synthetic clause-helper expressions referenced only by HAVING or
// ORDER BY (indices [Size, len(Projections))). GroupBy and OrderBy
// reference entries in Projections by index rather than holding their
// own copies of the expression, so that re-targeting a clause at a
// map-side alias only ever requires looking up Projections[idx].alias —
// never rebuilding an expression.
//
// Joins, subqueries, UNION, window functions, and correlated references
// are out of scope; From is always a single Table.
type Select struct {
	Distinct bool
	// Size is the number of user-visible output columns. It is <=
	// len(Projections): HAVING's expression, when the source query has
	// one, occupies a synthetic slot beyond Size.
	Size        int
	Projections []Node
	From        *Table
	Where       Node
	// GroupBy holds indices into Projections.
	GroupBy []int
	// HavingColumn is the index into Projections of the HAVING
	// expression, or -1 if the query has no HAVING clause.
	HavingColumn int
	OrderBy      []OrderItem
	Limit        *int64
	Offset       *int64
}

// NewSelect returns an empty Select over from, with no HAVING clause.
func NewSelect(from *Table) *Select {
	return &Select{From: from, HavingColumn: -1}
}

// AllExpressions returns the full projection list, including any
// synthetic clause-helper expressions beyond the user-visible columns.
// This is the list the expression splitter iterates over and grows.
func (s *Select) AllExpressions() []Node {
	return s.Projections
}

// HasHaving reports whether the query has a HAVING clause.
func (s *Select) HasHaving() bool {
	return s.HavingColumn >= 0
}

// HavingExpr returns the HAVING expression, or nil if the query has
// none.
func (s *Select) HavingExpr() Node {
	if !s.HasHaving() || s.HavingColumn >= len(s.Projections) {
		return nil
	}
	return s.Projections[s.HavingColumn]
}

func (s *Select) text(dst *strings.Builder) {
	dst.WriteString("SELECT ")
	if s.Distinct {
		dst.WriteString("DISTINCT ")
	}
	for i := 0; i < s.Size; i++ {
		if i > 0 {
			dst.WriteString(", ")
		}
		s.Projections[i].text(dst)
	}
	if s.From != nil {
		dst.WriteString(" FROM ")
		s.From.text(dst)
	}
	if s.Where != nil {
		dst.WriteString(" WHERE ")
		s.Where.text(dst)
	}
	if len(s.GroupBy) > 0 {
		dst.WriteString(" GROUP BY ")
		for i, idx := range s.GroupBy {
			if i > 0 {
				dst.WriteString(", ")
			}
			s.groupTargetText(dst, idx)
		}
	}
	if s.HasHaving() {
		dst.WriteString(" HAVING ")
		s.HavingExpr().text(dst)
	}
	if len(s.OrderBy) > 0 {
		dst.WriteString(" ORDER BY ")
		for i, o := range s.OrderBy {
			if i > 0 {
				dst.WriteString(", ")
			}
			dst.WriteString(orderText(s.resolveOrderTarget(o), o.Sort))
		}
	}
	if s.Limit != nil {
		dst.WriteString(" LIMIT ")
		appendInt(dst, *s.Limit)
	}
	if s.Offset != nil {
		dst.WriteString(" OFFSET ")
		appendInt(dst, *s.Offset)
	}
}

// groupTargetText renders the GROUP BY column referenced by a
// projection index. Once the splitter has run, that projection is
// always an *Alias, and GROUP BY references it by alias name, not by
// re-emitting the aliased expression: a reduce query only ever refers
// to a map output by its alias.
func (s *Select) groupTargetText(dst *strings.Builder, idx int) {
	child, name, ok := Unalias(s.Projections[idx])
	if ok {
		dst.WriteString(QuoteID(name))
		return
	}
	child.text(dst)
}

// resolveOrderTarget returns the node an ORDER BY term renders against.
// When o.Target is set — always the case for a reduce query's ORDER BY
// once the splitter has rehomed it onto a map-side alias — it is used
// as-is. Otherwise the term resolves by index against this Select's own
// Projections, which is only correct for a self-consistent, freshly
// parsed source query.
func (s *Select) resolveOrderTarget(o OrderItem) Node {
	if o.Target != nil {
		return o.Target
	}
	if _, name, ok := Unalias(s.Projections[o.Sort.ColumnIndex]); ok {
		return NewColumn(name)
	}
	return s.Projections[o.Sort.ColumnIndex]
}

func (s *Select) Equals(n Node) bool {
	o, ok := n.(*Select)
	if !ok {
		return false
	}
	if o.Distinct != s.Distinct || o.Size != s.Size || o.HavingColumn != s.HavingColumn {
		return false
	}
	if (o.From == nil) != (s.From == nil) || (o.From != nil && !o.From.Equals(s.From)) {
		return false
	}
	if (o.Where == nil) != (s.Where == nil) || (o.Where != nil && !o.Where.Equals(s.Where)) {
		return false
	}
	if (o.Limit == nil) != (s.Limit == nil) || (o.Limit != nil && *o.Limit != *s.Limit) {
		return false
	}
	if (o.Offset == nil) != (s.Offset == nil) || (o.Offset != nil && *o.Offset != *s.Offset) {
		return false
	}
	if len(o.Projections) != len(s.Projections) {
		return false
	}
	for i := range s.Projections {
		if !o.Projections[i].Equals(s.Projections[i]) {
			return false
		}
	}
	if len(o.GroupBy) != len(s.GroupBy) {
		return false
	}
	for i := range s.GroupBy {
		if o.GroupBy[i] != s.GroupBy[i] {
			return false
		}
	}
	if len(o.OrderBy) != len(s.OrderBy) {
		return false
	}
	for i := range s.OrderBy {
		a, b := s.OrderBy[i], o.OrderBy[i]
		if a.Sort != b.Sort {
			return false
		}
		if (a.Target == nil) != (b.Target == nil) {
			return false
		}
		if a.Target != nil && !a.Target.Equals(b.Target) {
			return false
		}
	}
	return true
}

// Clone returns a deep, structurally fresh copy of s. The map query the
// splitter mutates is always produced via Clone so that the source AST
// — read-only input, never mutated — is never touched.
func (s *Select) Clone() Node {
	cp := &Select{
		Distinct:     s.Distinct,
		Size:         s.Size,
		HavingColumn: s.HavingColumn,
	}
	if s.From != nil {
		cp.From = s.From.Clone().(*Table)
	}
	if s.Where != nil {
		cp.Where = s.Where.Clone()
	}
	if s.Projections != nil {
		cp.Projections = make([]Node, len(s.Projections))
		for i, p := range s.Projections {
			cp.Projections[i] = p.Clone()
		}
	}
	if s.GroupBy != nil {
		cp.GroupBy = slices.Clone(s.GroupBy)
	}
	if s.OrderBy != nil {
		cp.OrderBy = make([]OrderItem, len(s.OrderBy))
		for i, o := range s.OrderBy {
			cp.OrderBy[i] = OrderItem{Sort: o.Sort}
			if o.Target != nil {
				cp.OrderBy[i].Target = o.Target.Clone()
			}
		}
	}
	if s.Limit != nil {
		l := *s.Limit
		cp.Limit = &l
	}
	if s.Offset != nil {
		o := *s.Offset
		cp.Offset = &o
	}
	return cp
}

func (s *Select) walk(v Visitor) {
	if s.From != nil {
		Walk(v, s.From)
	}
	if s.Where != nil {
		Walk(v, s.Where)
	}
	for _, p := range s.Projections {
		Walk(v, p)
	}
	for _, o := range s.OrderBy {
		if o.Target != nil {
			Walk(v, o.Target)
		}
	}
}
