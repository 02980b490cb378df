// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

var (
	// ErrCapacityExceeded indicates an operation would hold more than
	// Cap elements.
	//
	// Push, Insert, Extend, Append, Collect and Of panic with an error
	// wrapping ErrCapacityExceeded. TryPush and TryInsert return [ErrFull]
	// instead, and decoding returns a [*LengthError]; both match
	// ErrCapacityExceeded under errors.Is.
	ErrCapacityExceeded = errors.New("arrayvec: capacity exceeded")

	// ErrIndexOutOfRange indicates an index outside the live range.
	// It is always raised by panic.
	ErrIndexOutOfRange = errors.New("arrayvec: index out of range")

	// ErrLayout indicates the storage type is not an array of the
	// element type, or the element type is not trivially copyable.
	// It is always raised by panic.
	ErrLayout = errors.New("arrayvec: invalid storage layout")
)

// ErrWouldBlock is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrFull is returned by TryPush and TryInsert when the vec has no room.
//
// A full vec is a control flow signal, not a failure: the vec is unchanged
// and the caller still holds the value. ErrFull matches both
// [ErrCapacityExceeded] and [ErrWouldBlock] under errors.Is.
//
// Example:
//
//	if err := v.TryPush(x); arrayvec.IsWouldBlock(err) {
//	    flush(v.Slice())
//	    v.Clear()
//	    v.Push(x)
//	}
var ErrFull = fmt.Errorf("%w: %w", ErrCapacityExceeded, iox.ErrWouldBlock)

// LengthError is returned when decoding a sequence longer than the
// vec's capacity. No partially decoded vec is retained.
type LengthError struct {
	Len int // elements seen when decoding stopped (Max+1)
	Max int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("arrayvec: invalid length %d, expected at most %d elements", e.Len, e.Max)
}

// Is reports whether target is [ErrCapacityExceeded].
func (e *LengthError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// IsWouldBlock reports whether err is ErrFull from TryPush or TryInsert,
// directly or wrapped. Delegates to [iox.IsWouldBlock].
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err signals a condition the caller is
// expected to handle, such as a full vec, rather than a failure.
// A *LengthError from decoding is not semantic.
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err is nil or a full-vec signal such as
// ErrFull.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

func capacityPanic(op string, limit int) {
	panic(fmt.Errorf("%w: %s on full vec (cap %d)", ErrCapacityExceeded, op, limit))
}

func indexPanic(op string, i, n int) {
	panic(fmt.Errorf("%w: %s index %d with length %d", ErrIndexOutOfRange, op, i, n))
}
