// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"reflect"
	"sync"
)

type key struct {
	elem reflect.Type
	arr  reflect.Type
}

type result struct {
	n   int
	err error
}

var cache sync.Map // key → result

// Of returns the number of T slots in A, or an error if A is not a
// valid inline storage type for T.
func Of[T, A any]() (int, error) {
	k := key{elem: reflect.TypeFor[T](), arr: reflect.TypeFor[A]()}
	if r, ok := cache.Load(k); ok {
		r := r.(result)
		return r.n, r.err
	}
	n, err := Check(k.elem, k.arr)
	cache.Store(k, result{n: n, err: err})
	return n, err
}

// Check validates arr as storage for elem and returns the slot count.
func Check(elem, arr reflect.Type) (int, error) {
	if arr.Kind() != reflect.Array {
		return 0, fmt.Errorf("storage %v is not an array", arr)
	}
	if arr.Elem() != elem {
		return 0, fmt.Errorf("storage %v does not hold %v elements", arr, elem)
	}
	if !Flat(elem) {
		return 0, fmt.Errorf("element type %v is not trivially copyable", elem)
	}
	return arr.Len(), nil
}

// Flat reports whether t is pointer-free.
func Flat(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || Flat(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !Flat(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
