package split

import "strconv"

const (
	// TablePrefix and ColumnPrefix are reserved identifier prefixes;
	// callers must avoid them in user-supplied table and column names,
	// since the splitter treats this namespace as its own.
	TablePrefix  = "__T"
	ColumnPrefix = "__C"
)

// namer allocates the deterministic __T*/__C* identifiers a split
// produces for its merge table and synthetic column aliases. It is
// scoped to a single Split call: a fresh namer is created per
// invocation, which is what makes concurrent Split calls on distinct
// inputs safe without any package-level mutable state.
type namer struct {
	invocation int
}

func newNamer() *namer {
	return &namer{}
}

// mergeTable returns the synthetic merge-table name for this
// invocation. A single top-level Split call always produces __T0.
func (n *namer) mergeTable() string {
	return TablePrefix + strconv.Itoa(n.invocation)
}

// columnName returns the synthetic column alias for projection slot idx.
// It has no receiver state because it is purely a function of idx, but
// it lives next to namer so both halves of the naming scheme are
// grounded in one file.
func columnName(idx int) string {
	return ColumnPrefix + strconv.Itoa(idx)
}
