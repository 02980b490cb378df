// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2) so equal vecs
// encode to identical bytes. Only Digest uses it: shortest-float
// encoding would change the wire shape of MarshalCBOR.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("arrayvec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("arrayvec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR implements cbor.Marshaler. The live elements encode
// exactly as a []T would under cbor.Marshal; capacity is not encoded.
//
// The value receiver lets marshaling reach vecs held by value in
// non-addressable places, at the cost of copying the storage array.
func (v Vec[T, A]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(v.Slice())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
//
// The array is split into raw items, then each item is decoded and pushed
// with TryPush, so an overlong array fails with *LengthError before any
// item past Cap is decoded. The target is left unchanged on error.
// null decodes to an empty vec.
func (v *Vec[T, A]) UnmarshalCBOR(data []byte) error {
	if len(data) > 0 && data[0]>>5 == cborByteString {
		// []byte-shaped vecs round-trip as a byte string, like []byte does.
		var xs []T
		if err := decMode.Unmarshal(data, &xs); err != nil {
			return err
		}
		out, err := decodeSlice[T, A](xs)
		if err != nil {
			return err
		}
		*v = out
		return nil
	}

	var items []cbor.RawMessage
	if err := decMode.Unmarshal(data, &items); err != nil {
		return err
	}
	i := 0
	out, err := decode[T, A](func(x *T) (bool, error) {
		if i == len(items) {
			return false, nil
		}
		item := items[i]
		i++
		return true, decMode.Unmarshal(item, x)
	})
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// cborByteString is CBOR major type 2.
const cborByteString = 2
