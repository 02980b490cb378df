// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package layout validates inline storage types for arrayvec.
//
// Layout contract:
// A storage type must be an array whose element type is exactly the
// vec's element type, and that element type must be flat: it holds no
// pointers, directly or through nested arrays and structs. Flat values
// can be moved by memmove and discarded without any per-element work,
// which is what the vec's shifting and O(1) clear rely on.
//
// Results are cached per (element, array) pair, so the reflection cost
// is paid once per instantiation.
package layout
