package crossval

import (
	"math/rand"
	"sort"
)

// assignFolds partitions the row indices 0..len(target)-1 into k folds,
// stratified on the target: indices are shuffled with a generator seeded by
// seed, stably sorted by target value, and dealt round-robin so each fold
// spans the full range of the target. Fold sizes differ by at most one and
// every index lands in exactly one fold.
func assignFolds(target []float64, k int, seed int64) [][]int {
	perm := rand.New(rand.NewSource(seed)).Perm(len(target))
	sort.SliceStable(perm, func(i, j int) bool {
		return target[perm[i]] < target[perm[j]]
	})

	folds := make([][]int, k)
	for i, row := range perm {
		folds[i%k] = append(folds[i%k], row)
	}
	for _, fold := range folds {
		sort.Ints(fold)
	}
	return folds
}

// trainRows returns the complement of folds[i], in ascending row order.
func trainRows(folds [][]int, i, n int) []int {
	rows := make([]int, 0, n-len(folds[i]))
	for j, fold := range folds {
		if j == i {
			continue
		}
		rows = append(rows, fold...)
	}
	sort.Ints(rows)
	return rows
}
