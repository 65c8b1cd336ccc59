package connectivity

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// forEachRow runs fn(i) for i in [0, n) on at most workers goroutines and
// returns the first error.
func forEachRow(n, workers int, fn func(i int) error) error {
	var g errgroup.Group
	g.SetLimit(workers)

	for i := range n {
		g.Go(func() error { return fn(i) })
	}

	return g.Wait()
}

// pairMatrix evaluates cell(i, k) for k >= i and mirrors each off-diagonal
// value into (k, i) multiplied by mirror (1 for symmetric metrics, -1 for
// antisymmetric ones). Every cell is written by exactly one task.
func pairMatrix(n, workers int, mirror float64, cell func(i, k int) float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)

	_ = forEachRow(n, workers, func(i int) error {
		for k := i; k < n; k++ {
			v := cell(i, k)
			m.Set(i, k, v)

			if k != i {
				m.Set(k, i, mirror*v)
			}
		}

		return nil
	})

	return m
}
