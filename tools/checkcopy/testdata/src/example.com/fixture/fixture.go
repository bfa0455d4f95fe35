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

// Package fixture exercises the checkcopy analyzer.
package fixture

import (
	"unsafe"

	"clist.dev/clist/pkg/clist"
)

// Waiter contains an Entry directly.
type Waiter struct {
	ID   int
	Node clist.Entry
}

// Wrapped contains an Entry only through a nested struct field.
type Wrapped struct {
	Inner Waiter
}

// Batch contains Entries through an array.
type Batch struct {
	Waiters [2]Waiter
}

// Handle holds Entry-bearing values only behind references; copying a
// Handle copies no Entry.
type Handle struct {
	W *Waiter
	S []Waiter
	M map[int]Waiter
}

func makeWaiter() Waiter { return Waiter{} }

func take(w Waiter)     { _ = w }
func takePtr(w *Waiter) { _ = w }

func assignments(w Waiter, p *Waiter) {
	w2 := w // want "assignment copies Waiter, which contains a clist.Entry"
	_ = w2

	var w3 = w // want "declaration copies Waiter, which contains a clist.Entry"
	_ = w3

	w4 := *p // want "assignment copies Waiter, which contains a clist.Entry"
	_ = w4

	e := w.Node // want "assignment copies clist.dev/clist/pkg/clist.Entry, which contains a clist.Entry"
	_ = e

	var wr Wrapped
	wr2 := wr // want "assignment copies Wrapped, which contains a clist.Entry"
	_ = wr2

	var b Batch
	b2 := b // want "assignment copies Batch, which contains a clist.Entry"
	_ = b2

	// Fresh values carry no list membership.
	fresh := Waiter{ID: 1}
	_ = fresh
	made := makeWaiter()
	_ = made

	// Copying references to Entry-bearing values is fine.
	q := p
	_ = q
	var h Handle
	h2 := h
	_ = h2
}

func calls(w Waiter, p *Waiter) {
	take(w)  // want "call argument copies Waiter, which contains a clist.Entry"
	take(*p) // want "call argument copies Waiter, which contains a clist.Entry"

	// Fresh values and pointers are fine.
	take(Waiter{})
	take(makeWaiter())
	takePtr(&w)
	takePtr(p)

	// Builtins do not copy their arguments.
	_ = new(Waiter)
	_ = unsafe.Sizeof(w)
	var arr [2]Waiter
	_ = len(arr)
}
