// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import (
	"fmt"
	"unsafe"

	"code.hybscloud.com/arrayvec/internal/layout"
)

// Vec is a fixed-capacity sequence stored inline in an array.
//
// A must be an array type [N]T; N is the capacity. T must be trivially
// copyable (no pointers, strings, slices, maps, channels, funcs or
// interfaces, directly or nested). Both are checked on [New] and on the
// first write into an empty vec; a violation panics with [ErrLayout].
//
// Slots [0, Len) hold live elements. Slots [Len, Cap) are never read.
//
// The zero value is an empty vec ready to use. Assigning a Vec copies
// the whole array, so the copy never aliases the original. Vec is not
// comparable with ==; use [Equal].
//
// Vec is not safe for concurrent mutation.
//
// Memory: unsafe.Sizeof(A) plus one int
type Vec[T any, A any] struct {
	_   [0]func() // incomparable: == would compare stale slots
	n   int
	buf A
}

// New returns an empty vec after validating its storage layout.
// Panics with ErrLayout if A is not [N]T or T is not trivially copyable.
func New[T any, A any]() Vec[T, A] {
	mustLayout[T, A]()
	return Vec[T, A]{}
}

func mustLayout[T, A any]() int {
	n, err := layout.Of[T, A]()
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrLayout, err))
	}
	return n
}

// base points at slot 0.
func (v *Vec[T, A]) base() *T {
	return (*T)(unsafe.Pointer(&v.buf))
}

// slots returns storage [0, Cap) including the unread tail.
// Only the mutators below may touch indexes >= v.n.
func (v *Vec[T, A]) slots() []T {
	return unsafe.Slice(v.base(), v.Cap())
}

// Len returns the number of live elements.
func (v *Vec[T, A]) Len() int {
	return v.n
}

// IsEmpty reports whether the vec has no live elements.
func (v *Vec[T, A]) IsEmpty() bool {
	return v.n == 0
}

// Cap returns the fixed capacity N of the storage array.
func (v *Vec[T, A]) Cap() int {
	var zero T
	if sz := unsafe.Sizeof(zero); sz != 0 {
		return int(unsafe.Sizeof(v.buf) / sz)
	}
	return mustLayout[T, A]()
}

// Remaining returns Cap - Len.
func (v *Vec[T, A]) Remaining() int {
	return v.Cap() - v.n
}

// IsFull reports whether Len == Cap.
func (v *Vec[T, A]) IsFull() bool {
	return v.Remaining() == 0
}

// Push appends x.
// Panics with ErrCapacityExceeded if the vec is full.
//
// Complexity: O(1)
func (v *Vec[T, A]) Push(x T) {
	if v.n == 0 {
		mustLayout[T, A]()
	}
	s := v.slots()
	if v.n >= len(s) {
		capacityPanic("push", len(s))
	}
	s[v.n] = x
	v.n++
}

// TryPush appends x if there is room.
// Returns ErrFull without modifying the vec if it is full.
func (v *Vec[T, A]) TryPush(x T) error {
	if v.Remaining() == 0 {
		return ErrFull
	}
	v.Push(x)
	return nil
}

// Pop removes and returns the last element.
// Returns (zero-value, false) if the vec is empty.
func (v *Vec[T, A]) Pop() (T, bool) {
	if v.n == 0 {
		var zero T
		return zero, false
	}
	return v.Remove(v.n - 1), true
}

// Remove removes and returns the element at i, shifting the elements
// after it down by one.
// Panics with ErrIndexOutOfRange if i is not in [0, Len).
//
// Complexity: O(Len-i), a single memmove of Len-i-1 elements.
func (v *Vec[T, A]) Remove(i int) T {
	if i < 0 || i >= v.n {
		indexPanic("remove", i, v.n)
	}
	s := v.slots()[:v.n]
	x := s[i]
	copy(s[i:], s[i+1:])
	v.n--
	return x
}

// SwapRemove removes and returns the element at i, moving the last
// element into its place. Order is not preserved.
// Panics with ErrIndexOutOfRange if i is not in [0, Len).
//
// Complexity: O(1)
func (v *Vec[T, A]) SwapRemove(i int) T {
	if i < 0 || i >= v.n {
		indexPanic("swap remove", i, v.n)
	}
	s := v.slots()[:v.n]
	x := s[i]
	s[i] = s[v.n-1]
	v.n--
	return x
}

// Insert places x at index i, shifting [i, Len) up by one.
// i == Len appends.
// Panics with ErrCapacityExceeded if the vec is full, then with
// ErrIndexOutOfRange if i is not in [0, Len].
//
// Complexity: same as Remove.
func (v *Vec[T, A]) Insert(i int, x T) {
	if v.IsFull() {
		capacityPanic("insert", v.Cap())
	}
	if i < 0 || i > v.n {
		indexPanic("insert", i, v.n)
	}
	if i == v.n {
		v.Push(x)
		return
	}
	s := v.slots()[:v.n+1]
	copy(s[i+1:], s[i:v.n])
	s[i] = x
	v.n++
}

// TryInsert is Insert that returns ErrFull instead of panicking when the
// vec is full. An out-of-range index still panics.
func (v *Vec[T, A]) TryInsert(i int, x T) error {
	if v.IsFull() {
		return ErrFull
	}
	v.Insert(i, x)
	return nil
}

// Truncate shortens the vec to n elements.
// Panics with ErrIndexOutOfRange if n is not in [0, Len].
//
// Complexity: O(1)
func (v *Vec[T, A]) Truncate(n int) {
	if n < 0 || n > v.n {
		indexPanic("truncate", n, v.n)
	}
	v.n = n
}

// Clear removes all elements.
//
// Elements are trivially copyable and need no finalization, so this
// only resets the length.
//
// Complexity: O(1)
func (v *Vec[T, A]) Clear() {
	v.n = 0
}

// Clone returns a copy of v. Same as assignment.
func (v *Vec[T, A]) Clone() Vec[T, A] {
	return *v
}
