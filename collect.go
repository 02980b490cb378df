// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import (
	"iter"
	"slices"
)

// Collect builds a vec from every element of seq, in order.
// Panics with ErrCapacityExceeded at the element that would overflow;
// the input is never truncated.
//
// Example:
//
//	v := arrayvec.Collect[int, [8]int](slices.Values(src))
func Collect[T any, A any](seq iter.Seq[T]) Vec[T, A] {
	v := New[T, A]()
	v.Extend(seq)
	return v
}

// Of builds a vec holding xs, with the same semantics as Collect.
//
//	v := arrayvec.Of[int, [4]int](1, 2, 3)
func Of[T any, A any](xs ...T) Vec[T, A] {
	return Collect[T, A](slices.Values(xs))
}
