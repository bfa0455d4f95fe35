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
	"fmt"
	"iter"
	"reflect"
)

// Field describes the location of an Entry field within a container type T
// and projects between an *Entry and the *T embedding it using the field's
// byte offset, captured when the descriptor is constructed. Projection
// itself performs no reflection and no allocation.
//
// Descriptors are plain values, cheap to copy and safe for concurrent use.
// They are typically constructed once, at package init:
//
//	var waiterNode = clist.FieldOf[waiter]()
//
// Use FieldOf or FieldNamed to construct a Field; the zero Field is not
// meaningful.
type Field[T any] struct {
	off uintptr
}

// entryType is the reflect.Type container fields are matched against.
var entryType = reflect.TypeFor[Entry]()

// FieldOf returns a descriptor for the first Entry field of the struct type
// T, in declaration order, descending into embedded structs. It panics if T
// is not a struct type or has no Entry field.
func FieldOf[T any]() Field[T] {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("clist: %v is not a struct type", t))
	}
	off, ok := findEntry(t, 0)
	if !ok {
		panic(fmt.Sprintf("clist: %v has no clist.Entry field", t))
	}
	return Field[T]{off: off}
}

// findEntry returns the byte offset of the first Entry field of t, searching
// embedded structs depth-first in declaration order.
func findEntry(t reflect.Type, base uintptr) (uintptr, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type == entryType {
			return base + f.Offset, true
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if off, ok := findEntry(f.Type, base+f.Offset); ok {
				return off, true
			}
		}
	}
	return 0, false
}

// FieldNamed returns a descriptor for the Entry field of the struct type T
// with the given name; the name may refer to a field promoted from an
// embedded struct. It panics if T is not a struct type, has no such field,
// or the field is not an Entry.
//
// FieldNamed distinguishes the lists a type participates in through
// multiple Entry fields:
//
//	type conn struct {
//		byAddr clist.Entry
//		byAge  clist.Entry
//	}
//
//	var connByAddr = clist.FieldNamed[conn]("byAddr")
//	var connByAge = clist.FieldNamed[conn]("byAge")
func FieldNamed[T any](name string) Field[T] {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("clist: %v is not a struct type", t))
	}
	f, ok := t.FieldByName(name)
	if !ok {
		panic(fmt.Sprintf("clist: %v has no field %q", t, name))
	}
	if f.Type != entryType {
		panic(fmt.Sprintf("clist: field %q of %v is %v, not clist.Entry", name, t, f.Type))
	}
	// For a promoted field, f.Offset is relative to the innermost embedded
	// struct; walk the index path to accumulate the offset within T.
	var off uintptr
	st := t
	for _, i := range f.Index {
		sf := st.Field(i)
		off += sf.Offset
		st = sf.Type
	}
	return Field[T]{off: off}
}

// First returns the container of the first member of list l, or nil if the
// list is empty or l is nil.
func (f Field[T]) First(l *Entry) *T {
	return f.Container(l.First())
}

// Last returns the container of the last member of list l, or nil if the
// list is empty or l is nil.
func (f Field[T]) Last(l *Entry) *T {
	return f.Container(l.Last())
}

// All returns an iterator over the containers of the members of list l,
// first to last. The traversal rules of Entry.All apply.
func (f Field[T]) All(l *Entry) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.LoopFirst(); e != l; e = e.LoopNext() {
			if !yield(f.Container(e)) {
				return
			}
		}
	}
}

// AllSafe returns an iterator over the containers of the members of list l,
// first to last, capturing the next cursor before each yield. The traversal
// rules of Entry.AllSafe apply: only the current member may be unlinked by
// the loop body.
func (f Field[T]) AllSafe(l *Entry) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		e := l.LoopFirst()
		next := e.LoopNext()
		for e != l {
			if !yield(f.Container(e)) {
				return
			}
			e = next
			next = next.LoopNext()
		}
	}
}

// Backward returns an iterator over the containers of the members of list
// l, last to first. The traversal rules of Entry.Backward apply.
func (f Field[T]) Backward(l *Entry) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.LoopLast(); e != l; e = e.LoopPrev() {
			if !yield(f.Container(e)) {
				return
			}
		}
	}
}
