package layout

import (
	"sort"
)

// compactRows collapses the sparse level values into consecutive row
// indices 0..k-1, preserving relative order, and groups node IDs by row.
// Parity skips routinely leave levels empty (e.g. level 1 unoccupied
// because no topic landed there); compaction removes the visual gap.
//
// Within a row, nodes initially keep their input order.
func compactRows(idx *index, levels map[string]int) [][]string {
	if len(idx.order) == 0 {
		return nil
	}

	distinct := make([]int, 0, len(levels))
	seen := make(map[int]bool)
	for _, id := range idx.order {
		if lvl := levels[id]; !seen[lvl] {
			seen[lvl] = true
			distinct = append(distinct, lvl)
		}
	}
	sort.Ints(distinct)

	rowOf := make(map[int]int, len(distinct))
	for i, lvl := range distinct {
		rowOf[lvl] = i
	}

	rows := make([][]string, len(distinct))
	for _, id := range idx.order {
		r := rowOf[levels[id]]
		rows[r] = append(rows[r], id)
	}
	return rows
}

// sortRows orders each row in place by descending incident-edge degree,
// with ties broken by case-sensitive label comparison and, for identical
// labels, by stable input order. High-degree hubs end up near the middle
// of the row once the centered position pass runs.
func sortRows(rows [][]string, idx *index) {
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			di, dj := idx.degree[row[i]], idx.degree[row[j]]
			if di != dj {
				return di > dj
			}
			return idx.nodes[row[i]].DisplayLabel() < idx.nodes[row[j]].DisplayLabel()
		})
	}
}
