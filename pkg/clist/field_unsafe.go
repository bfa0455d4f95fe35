// Copyright 2026 The clist Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package clist

import (
	"unsafe"
)

// Container returns the *T whose Entry field described by f is e, by
// subtracting the field's offset from e's address. A nil e yields a nil *T.
//
// e must be nil or the Entry field described by f inside a live T.
// Projecting any other entry, a list head in particular, is undefined:
// nothing at runtime relates e to the returned pointer.
//
//go:nosplit
func (f Field[T]) Container(e *Entry) *T {
	if e == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(uintptr(unsafe.Pointer(e)) - f.off))
}
