// SPDX-License-Identifier: MIT

package lattice

import "sort"

// Components partitions the sites into clusters connected by non-zero
// off-diagonal couplings. A bond counts in both directions even when the
// rule emitted only one of them, and explicit zero entries are not bonds.
//
// Components are ordered by their smallest site index; each holds its site
// indices in ascending order. An empty lattice has no components.
//
// Complexity: O(N + nnz) time and space.
func (l *Lattice) Components() [][]int {
	n := l.Size()
	adj := make([][]int, n)
	l.h.Do(func(i, j int, v float64) bool {
		if i != j && v != 0 {
			adj[i] = append(adj[i], j)
			adj[j] = append(adj[j], i)
		}
		return true
	})

	seen := make([]bool, n)
	var comps [][]int
	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}
