package connectivity

import "gonum.org/v1/gonum/mat"

// Vector flattens the strictly upper triangle of m in row-major order:
// (0,1), (0,2), …, (0,n-1), (1,2), …, (n-2,n-1). The result has n(n-1)/2
// elements for an n×n matrix.
func Vector(m mat.Matrix) []float64 {
	r, c := m.Dims()
	n := min(r, c)

	out := make([]float64, 0, n*(n-1)/2)
	for i := range n {
		for k := i + 1; k < n; k++ {
			out = append(out, m.At(i, k))
		}
	}

	return out
}

// PairIndex returns the position of pair (i, k), i < k, in the vector of an
// n×n matrix.
func PairIndex(n, i, k int) int {
	return i*n - i*(i+1)/2 + (k - i - 1)
}
