// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
)

// Slice returns the live elements as a Go slice backed by the vec's
// storage. Writes through the slice modify the vec. The slice's capacity
// equals its length, so append through it never reaches the tail.
//
// The slice is invalidated by any operation that changes Len, and it
// refers to this vec only: a copy of the vec has its own storage.
func (v *Vec[T, A]) Slice() []T {
	return v.slots()[:v.n:v.n]
}

// At returns the element at i.
// Panics with ErrIndexOutOfRange if i is not in [0, Len).
func (v *Vec[T, A]) At(i int) T {
	return *v.Ptr(i)
}

// Set replaces the element at i.
// Panics with ErrIndexOutOfRange if i is not in [0, Len).
func (v *Vec[T, A]) Set(i int, x T) {
	*v.Ptr(i) = x
}

// Ptr returns a pointer to the element at i.
// Panics with ErrIndexOutOfRange if i is not in [0, Len).
func (v *Vec[T, A]) Ptr(i int) *T {
	if i < 0 || i >= v.n {
		indexPanic("access", i, v.n)
	}
	return &v.slots()[i]
}

// All returns an iterator over index-value pairs in order.
// Each call starts a fresh traversal. The live length is re-read on
// every step, so removing elements while ranging ends the loop early
// rather than exposing stale slots.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.slots()[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (v *Vec[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if i >= v.n {
				continue
			}
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Pointers returns an iterator over index-pointer pairs in order.
// Writing through a pointer modifies the element in place.
func (v *Vec[T, A]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, &v.slots()[i]) {
				return
			}
		}
	}
}

// Extend pushes every element of seq in order.
// Panics with ErrCapacityExceeded at the first element that does not
// fit. Elements pushed before the panic stay in the vec.
func (v *Vec[T, A]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// Append pushes xs in order with the same semantics as Extend.
func (v *Vec[T, A]) Append(xs ...T) {
	v.Extend(slices.Values(xs))
}

// Equal reports whether a and b hold the same live elements in the same
// order. Capacities may differ.
func Equal[T comparable, A, B any](a *Vec[T, A], b *Vec[T, B]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any, A, B any](a *Vec[T, A], b *Vec[T, B], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Hash writes the live length and elements of v to h.
// Vecs that are Equal write the same bytes regardless of capacity.
func Hash[T comparable, A any](h *maphash.Hash, v *Vec[T, A]) {
	maphash.WriteComparable(h, v.n)
	for _, x := range v.Slice() {
		maphash.WriteComparable(h, x)
	}
}

// Format implements fmt.Formatter for both Vec and *Vec, so the storage
// tail never reaches fmt's struct printer. Formatting a Vec by value
// copies its storage array; pass a *Vec for large capacities. Elements are formatted with
// the caller's verb and flags:
//
//	fmt.Sprintf("%v", v)   // Vec{max: 5, buf: [4 5]}
//	fmt.Sprintf("%02x", v) // Vec{max: 5, buf: [04 05]}
func (v Vec[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, "Vec{max: %d, buf: ", v.Cap())
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
	fmt.Fprint(state, "}")
}

// String returns the %v form.
func (v *Vec[T, A]) String() string {
	return fmt.Sprintf("%v", v)
}
