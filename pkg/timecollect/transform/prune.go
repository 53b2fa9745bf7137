package transform

import "sort"

// Prune returns a copy of matrix with the given column indices removed from
// every row. Indices past the end of a row are ignored for that row, so ragged
// rows lose only the columns they actually have. matrix is not modified.
func Prune(matrix [][]string, indices []int) [][]string {
	desc := descendingUnique(indices)

	out := make([][]string, len(matrix))
	for r, row := range matrix {
		pruned := make([]string, len(row))
		copy(pruned, row)
		// Highest index first keeps the remaining indices pointing at their
		// original cells.
		for _, idx := range desc {
			if idx < len(pruned) {
				pruned = append(pruned[:idx], pruned[idx+1:]...)
			}
		}
		out[r] = pruned
	}
	return out
}

// descendingUnique returns the non-negative indices sorted high to low without duplicates.
func descendingUnique(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	var out []int
	for _, idx := range indices {
		if idx < 0 || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
