// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decode builds a fresh vec from next, which stores the following
// element in *x and reports false once the input is exhausted.
//
// Elements are pushed with TryPush. The first element that does not fit
// ends decoding with a *LengthError. On any error the partial vec is
// dropped; callers assign the result only when err is nil.
func decode[T, A any](next func(x *T) (bool, error)) (Vec[T, A], error) {
	out := New[T, A]()
	for i := 0; ; i++ {
		var x T
		ok, err := next(&x)
		if err != nil {
			return Vec[T, A]{}, fmt.Errorf("arrayvec: element %d: %w", i, err)
		}
		if !ok {
			return out, nil
		}
		if out.TryPush(x) != nil {
			return Vec[T, A]{}, &LengthError{Len: i + 1, Max: out.Cap()}
		}
	}
}

// decodeSlice is decode over an already decoded slice.
func decodeSlice[T, A any](xs []T) (Vec[T, A], error) {
	i := 0
	return decode[T, A](func(x *T) (bool, error) {
		if i == len(xs) {
			return false, nil
		}
		*x = xs[i]
		i++
		return true, nil
	})
}

// MarshalJSON implements json.Marshaler. The live elements encode
// exactly as a []T would; capacity is not encoded.
//
// The value receiver lets encoding/json reach vecs held by value in
// non-addressable places, at the cost of copying the storage array.
func (v Vec[T, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Slice())
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Array elements are decoded one at a time and pushed with TryPush.
// An array longer than Cap fails with *LengthError and leaves v
// unchanged. null decodes to an empty vec.
func (v *Vec[T, A]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch tok := tok.(type) {
	case nil:
		v.Clear()
		return nil
	case json.Delim:
		if tok != '[' {
			return fmt.Errorf("arrayvec: cannot unmarshal JSON %v into vec", tok)
		}
	case string:
		// []byte-shaped vecs round-trip as base64, like []byte does.
		var xs []T
		if err := json.Unmarshal(data, &xs); err != nil {
			return err
		}
		out, err := decodeSlice[T, A](xs)
		if err != nil {
			return err
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("arrayvec: cannot unmarshal JSON %v into vec", tok)
	}

	out, err := decode[T, A](func(x *T) (bool, error) {
		if !dec.More() {
			return false, nil
		}
		return true, dec.Decode(x)
	})
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*v = out
	return nil
}
