// Package config decodes the declarative YAML query description consumed
// by cmd/qsplit into an ast.Select. It is not a SQL grammar and never
// will be — it exists only so the splitter can be exercised from the
// command line without a real SQL front end.
package config

import (
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// ColumnSpec describes one SELECT projection. Exactly one of Column or
// Agg is set: a bare column reference, or an aggregate over Arg (empty
// for count_all). Alias, if set, becomes the projection's user alias.
type ColumnSpec struct {
	Column   string `json:"column,omitempty"`
	Agg      string `json:"agg,omitempty"`
	Distinct bool   `json:"distinct,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Alias    string `json:"alias,omitempty"`
}

// OrderSpec describes one ORDER BY term, referencing a Columns index.
type OrderSpec struct {
	Column    int  `json:"column"`
	Desc      bool `json:"desc,omitempty"`
	NullsLast bool `json:"nulls_last,omitempty"`
}

// HavingSpec describes a single HAVING comparison: the expression at
// Columns[Column], compared against Value via Op ("=", "<>", "<", "<=",
// ">", ">=").
type HavingSpec struct {
	Column int     `json:"column"`
	Op     string  `json:"op"`
	Value  float64 `json:"value"`
}

// Query is the top-level YAML document shape: one SELECT, described
// using the same vocabulary as the ast factories.
type Query struct {
	Table    string       `json:"table"`
	Distinct bool         `json:"distinct,omitempty"`
	Columns  []ColumnSpec `json:"columns"`
	GroupBy  []int        `json:"group_by,omitempty"`
	Having   *HavingSpec  `json:"having,omitempty"`
	OrderBy  []OrderSpec  `json:"order_by,omitempty"`
	Limit    *int64       `json:"limit,omitempty"`
	Offset   *int64       `json:"offset,omitempty"`
}

// Load decodes a Query document from r.
func Load(r io.Reader) (*Query, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: reading query document: %w", err)
	}
	var q Query
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("config: decoding query document: %w", err)
	}
	if q.Table == "" {
		return nil, fmt.Errorf("config: table is required")
	}
	if len(q.Columns) == 0 {
		return nil, fmt.Errorf("config: at least one column is required")
	}
	return &q, nil
}
