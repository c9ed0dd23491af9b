// Package assemble defines the two-step query artifact that is the sole
// output of split.Split.
package assemble

// MapEntry is one per-node map query. The single-select case — the only
// shape split.Split currently produces — yields exactly one entry,
// keyed by the synthetic merge table name the reduce query's FROM
// clause references.
type MapEntry struct {
	MergeTable string
	SQL        string
	Params     []any
}

// Clone returns a copy of e that shares no backing array with e's
// Params slice.
func (e MapEntry) Clone() MapEntry {
	cp := e
	if e.Params != nil {
		cp.Params = append([]any(nil), e.Params...)
	}
	return cp
}

// TwoStepQuery is the artifact split.Split returns: a reduce query to
// run on the coordinator once map results have landed in each entry's
// MergeTable, and the map queries to run on each node. ReduceSQL's FROM
// clause references Entries[i].MergeTable by name; for the single-select
// case there is exactly one entry.
type TwoStepQuery struct {
	ReduceSQL string
	Entries   []MapEntry
}

// Clone returns a deep copy of q. split's result cache returns a Clone
// of a cached artifact on every hit so that a caller mutating its own
// copy — e.g. appending to an Entry's Params — can never corrupt the
// cached entry.
func (q *TwoStepQuery) Clone() *TwoStepQuery {
	if q == nil {
		return nil
	}
	cp := &TwoStepQuery{ReduceSQL: q.ReduceSQL}
	if q.Entries != nil {
		cp.Entries = make([]MapEntry, len(q.Entries))
		for i, e := range q.Entries {
			cp.Entries[i] = e.Clone()
		}
	}
	return cp
}
