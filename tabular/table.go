package tabular

// Placeholder stands in for missing or null values so every row keeps the
// full column set.
const Placeholder = "-"

// Table is an ordered sequence of uniform records. Every row has exactly
// len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds one row. Short rows are padded with the placeholder and long
// rows are truncated, so the uniform-record invariant always holds.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i < len(cells) && cells[i] != "" {
			row[i] = cells[i]
		} else {
			row[i] = Placeholder
		}
	}
	t.Rows = append(t.Rows, row)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the values of the named column, or nil if the column does
// not exist.
func (t *Table) Column(name string) []string {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[idx])
	}
	return values
}

// Concat appends the rows of other, matching cells by column name. Columns
// missing from other are filled with the placeholder.
func (t *Table) Concat(other *Table) {
	if other == nil {
		return
	}
	index := make(map[string]int, len(other.Columns))
	for i, c := range other.Columns {
		index[c] = i
	}
	for _, row := range other.Rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			if j, ok := index[c]; ok && j < len(row) {
				cells[i] = row[j]
			}
		}
		t.Append(cells...)
	}
}

// DropEmptyColumns removes every column whose cells are all placeholders.
func (t *Table) DropEmptyColumns() {
	keep := make([]bool, len(t.Columns))
	for i := range t.Columns {
		for _, row := range t.Rows {
			if row[i] != Placeholder {
				keep[i] = true
				break
			}
		}
	}
	var columns []string
	for i, c := range t.Columns {
		if keep[i] {
			columns = append(columns, c)
		}
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		var cells []string
		for i := range t.Columns {
			if keep[i] {
				cells = append(cells, row[i])
			}
		}
		rows = append(rows, cells)
	}
	t.Columns = columns
	t.Rows = rows
}

// Cell converts an optional string to a cell value, mapping nil and empty to
// the placeholder.
func Cell(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}
