// Package funcptrs shows functions used as first-class values: passed as
// arguments, stored in variables, and compared through a Handle.
package funcptrs

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// ── Code reuse ────────────────────────────────────────────────────────────────
// Calculator takes two operands and the operation to apply. New operations
// plug in without touching Calculator.

// BinaryOp is the fixed signature every named arithmetic operation shares.
// Sum and Sub convert to it implicitly.
type BinaryOp func(x, y int32) int32

func Calculator[T constraints.Integer](x, y T, op func(T, T) T) T {
	return op(x, y)
}

func Sum(x, y int32) int32 { return x + y }
func Sub(x, y int32) int32 { return x - y }

// ── Dynamic behavior ──────────────────────────────────────────────────────────
// The comparison is chosen by the caller at run time: the same Sorter yields
// ascending or descending order depending on the function it receives.

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b, following cmp.Compare.
type CompareFunc[E any] func(a, b E) int

// Sorter reorders seq in place. Equal elements are indistinguishable by value,
// so the sort does not need to be stable.
func Sorter[S ~[]E, E any](seq S, compare CompareFunc[E]) {
	slices.SortFunc(seq, compare)
}

func Ascending[E cmp.Ordered](a, b E) int  { return cmp.Compare(a, b) }
func Descending[E cmp.Ordered](a, b E) int { return cmp.Compare(b, a) }
