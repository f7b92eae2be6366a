package models

import "sort"

// Record is an opaque row of a business table, keyed by its numeric
// primary key. Columns are whatever the target table defines.
type Record map[string]any

func (r Record) Id() (int64, bool) {
	switch id := r["id"].(type) {
	case int64:
		return id, true
	case int32:
		return int64(id), true
	case int:
		return int64(id), true
	default:
		return 0, false
	}
}

// TableDescriptor is the cached metadata for a business table: the set
// of columns the live schema defines for it. It reflects the schema at
// the time it was cached; a migration applied afterwards is not
// observed until the cache is explicitly invalidated.
type TableDescriptor struct {
	Name    string
	Columns map[string]struct{}
}

func (d TableDescriptor) HasColumn(name string) bool {
	_, ok := d.Columns[name]
	return ok
}

// ColumnList returns the columns in a stable order, for building
// explicit column lists in queries.
func (d TableDescriptor) ColumnList() []string {
	columns := make([]string, 0, len(d.Columns))
	for c := range d.Columns {
		columns = append(columns, c)
	}
	sort.Strings(columns)
	return columns
}
