package nbastats

import "fmt"

// statsResponse is the tabular envelope every stats endpoint returns: named
// result sets with a header row and untyped value rows.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// columns maps header names to row indexes for one result set.
type columns map[string]int

func (rs resultSet) columns() columns {
	cols := make(columns, len(rs.Headers))
	for i, h := range rs.Headers {
		cols[h] = i
	}
	return cols
}

// firstResultSet returns the leading result set or an error when the payload
// is empty.
func (r statsResponse) firstResultSet() (resultSet, error) {
	if len(r.ResultSets) == 0 {
		return resultSet{}, fmt.Errorf("nbastats: response carried no result sets")
	}
	return r.ResultSets[0], nil
}

func (c columns) float(row []any, header string) float64 {
	idx, ok := c[header]
	if !ok || idx >= len(row) {
		return 0
	}
	if v, ok := row[idx].(float64); ok {
		return v
	}
	return 0
}

func (c columns) str(row []any, header string) string {
	idx, ok := c[header]
	if !ok || idx >= len(row) {
		return ""
	}
	if v, ok := row[idx].(string); ok {
		return v
	}
	return ""
}

func (c columns) int(row []any, header string) int {
	return int(c.float(row, header))
}
