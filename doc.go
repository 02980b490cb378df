// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arrayvec provides a fixed-capacity sequence stored inline.
//
// A [Vec] keeps its elements in an array of static size plus a length.
// It never grows and never allocates: the whole container is one flat
// value that can live on the stack, inside another struct, or in a
// preallocated slab.
//
// # Quick Start
//
// The second type argument is the storage array; its length is the
// capacity:
//
//	var v arrayvec.Vec[int32, [8]int32]  // zero value is empty and ready
//	v := arrayvec.New[int32, [8]int32]() // same, with an eager layout check
//
// Bulk construction:
//
//	v := arrayvec.Of[int, [4]int](1, 2, 3)
//	v := arrayvec.Collect[int, [64]int](slices.Values(src))
//
// # Basic Usage
//
//	v.Push(4)
//	v.Push(2)
//	v.Push(5)
//	x := v.Remove(1)    // 2; v is [4 5]
//	v.Insert(0, 7)      // v is [7 4 5]
//	last, ok := v.Pop() // 5, true
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//	for _, p := range v.Pointers() {
//	    *p *= 2
//	}
//
// [Vec.Slice] exposes the live elements as an ordinary Go slice, so the
// slices package works directly on a vec:
//
//	slices.Sort(v.Slice())
//
// # Element Types
//
// Elements must be trivially copyable: booleans, numbers, and arrays or
// structs built only from them. Strings, pointers, slices, maps,
// channels, funcs and interfaces are rejected. This is what lets Remove
// and Insert shift elements with a single memmove and lets Clear run in
// O(1) without visiting the elements.
//
// Go cannot express the constraint in the type system, so it is checked
// at runtime on [New] and on the first write into an empty vec. A
// violation panics with [ErrLayout]. The check is cached per type.
//
// # Capacity and Length
//
//	v.Len()       // live elements
//	v.Cap()       // N, the array length
//	v.Remaining() // Cap - Len
//	v.IsFull()    // Remaining == 0
//
// Capacity is not part of a vec's identity. [Equal], [Hash], [Vec.Digest]
// and every encoding see only the live elements, so a Vec[int, [4]int]
// and a Vec[int, [16]int] holding the same values are equal.
//
// # Error Handling
//
// Overflow and bad indexes are programmer errors. Push, Insert, Extend,
// Append, Collect and Of panic with an error wrapping
// [ErrCapacityExceeded]; indexed access, Remove and Insert panic with
// [ErrIndexOutOfRange] for an index outside the live range. The panic
// value is an error, so a recover site can classify it with errors.Is.
//
// TryPush and TryInsert return [ErrFull] when the vec is full and leave
// it untouched. ErrFull wraps [ErrWouldBlock] from
// [code.hybscloud.com/iox]: a full vec is a control flow signal, not a
// failure.
//
//	if err := v.TryPush(x); arrayvec.IsWouldBlock(err) {
//	    flush(v.Slice())
//	    v.Clear()
//	    v.Push(x)
//	}
//
// # Serialization
//
// Vec implements the marshaler interfaces of encoding/json,
// [github.com/fxamacker/cbor/v2] and [gopkg.in/yaml.v3]. The wire shape
// is exactly that of a []T: no capacity, no extra length prefix.
//
// Decoding pushes each element with TryPush into a fresh vec. A sequence
// longer than the capacity fails with a [*LengthError] (which matches
// ErrCapacityExceeded) and the target is left unchanged:
//
//	var v arrayvec.Vec[int, [3]int]
//	err := json.Unmarshal([]byte(`[0,1,2,3]`), &v)
//	// arrayvec: invalid length 4, expected at most 3 elements
//
// # Thread Safety
//
// Vec is a plain value with no internal synchronization. Concurrent
// readers are safe; any concurrent writer requires external locking.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [github.com/fxamacker/cbor/v2] and [gopkg.in/yaml.v3] for encoding, and
// [github.com/zeebo/blake3] for Digest.
package arrayvec
