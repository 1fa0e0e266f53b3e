package record

// ResultTable is a generic tabular query result: column names plus rows of
// positional values, in the order the query produced them.
type ResultTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (t ResultTable) RowCount() int {
	return len(t.Rows)
}
