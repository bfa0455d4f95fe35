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

// Package clist is a test stub of the real package: the analyzer matches the
// Entry type by import path, and the package itself must stay exempt even
// though it copies Entry records.
package clist

// Entry is a member of a circular doubly-linked list.
type Entry struct {
	next *Entry
	prev *Entry
}

// Init makes e self-referencing, the unlinked state.
func (e *Entry) Init() {
	e.next = e
	e.prev = e
}

// Linked returns true if e is a member of a list.
func (e *Entry) Linked() bool {
	return e != nil && e.next != e
}

// PushBack inserts e at the back of list l.
func (l *Entry) PushBack(e *Entry) {
	prev := l.prev
	e.next = l
	e.prev = prev
	l.prev = e
	prev.next = e
}

// Swap exchanges the link state of the heads a and b. It copies Entry
// records by value; the analyzer must not flag this package.
func Swap(a, b *Entry) {
	t := *a
	*a = *b
	*b = t

	if a.next == b {
		a.next = a
		a.prev = a
	} else {
		a.next.prev = a
		a.prev.next = a
	}
	if b.next == a {
		b.next = b
		b.prev = b
	} else {
		b.next.prev = b
		b.prev.next = b
	}
}
