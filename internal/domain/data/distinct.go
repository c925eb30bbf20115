package data

import "github.com/google/btree"

const setDegree = 16

// Distinct removes duplicate rows using full-row value equality.
// The first occurrence of each row is kept and input order is preserved.
func Distinct(rows []Row) []Row {
	seen := btree.NewG[Row](setDegree, LessRows)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if _, found := seen.ReplaceOrInsert(row); found {
			continue
		}
		out = append(out, row)
	}
	return out
}
