/*
Package gauss verifies linear independence of finite vector collections
over a field by Gaussian elimination.

It is the concrete counterpart to the abstract independence witnesses of
the parent package: on finite examples, "no nontrivial finite relation
exists" becomes a rank computation.
*/
package gauss

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/finbasis/ring"
)

// tracer writes to trace with key 'finbasis'
func tracer() tracing.Trace {
	return tracing.Select("finbasis")
}

// Rank computes the rank of the row vectors over the field f.
//
// The input is copied; rows may have any common length, including zero.
func Rank[R any](f ring.Field[R], rows [][]R) int {
	n := len(rows)
	if n == 0 {
		return 0
	}
	m := len(rows[0])
	a := make([][]R, n)
	for i := range rows {
		assert(len(rows[i]) == m, "gauss.Rank requires rows of equal length")
		a[i] = append([]R(nil), rows[i]...)
	}
	rank := 0
	for col := 0; col < m && rank < n; col++ {
		pivot := -1
		for i := rank; i < n; i++ {
			if !ring.IsZero[R](f, a[i][col]) {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		a[rank], a[pivot] = a[pivot], a[rank]
		inv := f.Inv(a[rank][col])
		for j := col; j < m; j++ {
			a[rank][j] = f.Mul(a[rank][j], inv)
		}
		for i := 0; i < n; i++ {
			if i == rank {
				continue
			}
			factor := a[i][col]
			if ring.IsZero[R](f, factor) {
				continue
			}
			for j := col; j < m; j++ {
				a[i][j] = ring.Sub[R](f, a[i][j], f.Mul(factor, a[rank][j]))
			}
		}
		rank++
	}
	tracer().Debugf("gauss: rank %d of %d rows", rank, n)
	return rank
}

// Independent reports whether the row vectors are linearly independent
// over f, i.e. whether their rank equals their number. The empty
// collection is vacuously independent.
func Independent[R any](f ring.Field[R], rows [][]R) bool {
	return Rank(f, rows) == len(rows)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
