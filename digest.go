// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import "github.com/zeebo/blake3"

// digestKey is the BLAKE3 key for Digest, ASCII zero-padded to 32 bytes.
var digestKey = [32]byte{
	'a', 'r', 'r', 'a', 'y', 'v', 'e', 'c', '.', 'd', 'i', 'g', 'e', 's', 't', 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest returns a BLAKE3 keyed hash of the canonical CBOR encoding of
// the live elements. Unlike [Hash] it is stable across processes, and
// like Hash it ignores capacity.
func (v *Vec[T, A]) Digest() ([32]byte, error) {
	var sum [32]byte
	data, err := encMode.Marshal(v.Slice())
	if err != nil {
		return sum, err
	}
	h, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("arrayvec: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
