package model

// ResultTable is the tabular result of a single remote retrieval. Column
// order is the service's natural order and is preserved all the way to the
// exported file. Rows are positional: row[i] belongs to Columns[i].
type ResultTable struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// NumRows returns the number of data rows in the table.
func (t ResultTable) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (t ResultTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
