// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"code.hybscloud.com/arrayvec"
)

// ExampleVec demonstrates push, remove and insert on an inline vec.
func ExampleVec() {
	var v arrayvec.Vec[int, [5]int]
	v.Push(4)
	v.Push(2)
	v.Push(5)

	fmt.Println(v.Remove(1))
	fmt.Println(v.Slice(), v.Len(), v.Remaining())

	v.Insert(1, 9)
	fmt.Println(v.Slice())

	// Output:
	// 2
	// [4 5] 2 3
	// [4 9 5]
}

// ExampleVec_TryPush shows the recoverable path on a full vec.
func ExampleVec_TryPush() {
	var v arrayvec.Vec[int, [1]int]
	v.Push(5)

	err := v.TryPush(0)
	fmt.Println(errors.Is(err, arrayvec.ErrFull), arrayvec.IsWouldBlock(err))
	fmt.Println(v.Slice())

	// Output:
	// true true
	// [5]
}

// ExampleVec_Push shows that overflowing Push panics with an error.
func ExampleVec_Push() {
	var v arrayvec.Vec[int, [1]int]
	v.Push(0)

	defer func() {
		err := recover().(error)
		fmt.Println(errors.Is(err, arrayvec.ErrCapacityExceeded))
		fmt.Println(v.Slice())
	}()
	v.Push(1)

	// Output:
	// true
	// [0]
}

// ExampleVec_Pop drains a vec from the back.
func ExampleVec_Pop() {
	v := arrayvec.Of[string2, [4]string2](string2{'a', 'b'}, string2{'c', 'd'})
	for {
		x, ok := v.Pop()
		if !ok {
			break
		}
		fmt.Println(string(x[:]))
	}

	// Output:
	// cd
	// ab
}

// string2 is a fixed-size, pointer-free string.
type string2 [2]byte

// ExampleCollect builds a vec from an iterator.
func ExampleCollect() {
	v := arrayvec.Collect[int, [8]int](slices.Values([]int{3, 1, 2}))
	slices.Sort(v.Slice())
	fmt.Println(v.Slice(), v.Cap())

	// Output:
	// [1 2 3] 8
}

// ExampleEqual compares vecs of different capacities.
func ExampleEqual() {
	a := arrayvec.Of[int, [3]int](1, 2)
	b := arrayvec.Of[int, [64]int](1, 2)
	fmt.Println(arrayvec.Equal(&a, &b))

	// Output:
	// true
}

// ExampleVec_UnmarshalJSON decodes within and beyond capacity.
func ExampleVec_UnmarshalJSON() {
	var v arrayvec.Vec[int, [3]int]

	fmt.Println(json.Unmarshal([]byte(`[0, 1, 2]`), &v), v.Slice())
	fmt.Println(json.Unmarshal([]byte(`[0, 1, 2, 3]`), &v), v.Slice())

	// Output:
	// <nil> [0 1 2]
	// arrayvec: invalid length 4, expected at most 3 elements [0 1 2]
}

// ExampleVec_Format shows the debug form.
func ExampleVec_Format() {
	v := arrayvec.Of[uint16, [4]uint16](10, 255)
	fmt.Printf("%v\n", v)
	fmt.Printf("%02x\n", v)

	// Output:
	// Vec{max: 4, buf: [10 255]}
	// Vec{max: 4, buf: [0a ff]}
}
