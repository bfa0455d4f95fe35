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

// Package clist provides an intrusive circular doubly-linked list.
//
// Entries can be added to and removed from a list in O(1) time and with no
// additional memory allocations. The list is circular: one Entry, designated
// the head, anchors the cycle and is linked in it like any other member.
// Keeping the head inside the cycle removes the special cases that come with
// nil-terminated lists. Entries can be unlinked without a reference to the
// head, and neighbor access never returns nil.
//
// Types participate in a list by embedding an Entry field and linking it in.
// The list does not own, allocate, or free anything: an entry is only valid
// while the memory that holds it is, and must be unlinked before that memory
// is reused. A Field descriptor recovers the container from an embedded
// Entry, so loop bodies can operate on containers rather than bare entries:
//
//	type waiter struct {
//		id   int
//		node clist.Entry
//	}
//
//	var waiters clist.Entry
//	waiters.Init()
//	w := &waiter{id: 1}
//	waiters.PushBack(&w.node)
//
//	var waiterNode = clist.FieldOf[waiter]()
//	for w := range waiterNode.All(&waiters) {
//		// do something with w.
//	}
//
// No operation synchronizes. Callers that share a list across goroutines
// must provide their own mutual exclusion, typically one mutex per list held
// across any sequence of calls touching that list.
package clist

import (
	"iter"
)

// Entry is a member of a circular doubly-linked list. Types embed an Entry
// for each list they participate in; one distinguished Entry, the head,
// anchors each list and is itself a member of the cycle.
//
// An Entry in the unlinked state points at itself. The zero Entry is not a
// valid empty list: a head must be initialized with Init before first use,
// and so must any standalone entry whose link state will be queried with
// Linked before it is first linked.
//
// An Entry must not be copied after first use.
type Entry struct {
	next *Entry
	prev *Entry
}

// Init makes e self-referencing, the unlinked state. A head must be
// initialized before first use. Other entries need initialization only if
// Linked will be called on them before they are first linked.
//
// Init must not be called on an entry that is currently a member of a list;
// its former neighbors would be left referencing it.
//
//go:nosplit
func (e *Entry) Init() {
	e.next = e
	e.prev = e
}

// Linked returns true if e is a member of a list. A nil e is accepted and
// reports false.
//
// An entry removed with Unlink keeps its stale neighbor pointers and still
// reports true; use UnlinkInit when Linked must be meaningful afterward.
//
//go:nosplit
func (e *Entry) Linked() bool {
	return e != nil && e.next != e
}

// Empty returns true if list l has no members. A nil l is accepted and
// reports true.
//
//go:nosplit
func (l *Entry) Empty() bool {
	return !l.Linked()
}

// LinkBefore links e directly in front of where. where may be any member of
// a list, including the head: linking before the head makes e the new last
// member of that list.
//
// e is not inspected before it is linked. It must not be a member of any
// list, or that other list will be corrupted.
//
//go:nosplit
func (where *Entry) LinkBefore(e *Entry) {
	prev := where.prev
	e.next = where
	e.prev = prev
	where.prev = e
	prev.next = e
}

// LinkAfter links e directly behind where. where may be any member of a
// list, including the head: linking after the head makes e the new first
// member of that list.
//
// e is not inspected before it is linked. It must not be a member of any
// list, or that other list will be corrupted.
//
//go:nosplit
func (where *Entry) LinkAfter(e *Entry) {
	next := where.next
	e.next = next
	e.prev = where
	where.next = e
	next.prev = e
}

// PushBack inserts e at the back of list l. It is shorthand for
// l.LinkBefore(e).
//
//go:nosplit
func (l *Entry) PushBack(e *Entry) {
	l.LinkBefore(e)
}

// PushFront inserts e at the front of list l. It is shorthand for
// l.LinkAfter(e).
//
//go:nosplit
func (l *Entry) PushFront(e *Entry) {
	l.LinkAfter(e)
}

// Unlink removes e from the list it is a member of by repointing its
// neighbors at each other. Unlink does not modify e itself: e keeps its now
// stale neighbor pointers, and Linked still reports true. Use UnlinkInit to
// return e to the unlinked state.
//
// Unlink has no effect on an initialized, unlinked entry. Calling it on an
// entry that was never linked nor initialized is undefined.
//
//go:nosplit
func (e *Entry) Unlink() {
	next := e.next
	prev := e.prev
	next.prev = prev
	prev.next = next
}

// UnlinkInit is like Unlink, but also reinitializes e so that it can be
// relinked elsewhere or queried with Linked.
//
//go:nosplit
func (e *Entry) UnlinkInit() {
	// The branch is not needed for correctness; it avoids the stores when e
	// is already unlinked.
	if e.Linked() {
		e.Unlink()
		e.Init()
	}
}

// LoopFirst returns the first member of list l, or l itself if the list is
// empty. It never returns nil, which makes it suitable as a loop cursor:
//
//	for e := l.LoopFirst(); e != l; e = e.LoopNext() {
//		// do something with e.
//	}
//
//go:nosplit
func (l *Entry) LoopFirst() *Entry {
	return l.next
}

// LoopLast returns the last member of list l, or l itself if the list is
// empty. It never returns nil.
//
//go:nosplit
func (l *Entry) LoopLast() *Entry {
	return l.prev
}

// LoopNext returns the member after e, or the head if e is the last member.
// It never returns nil.
//
//go:nosplit
func (e *Entry) LoopNext() *Entry {
	return e.next
}

// LoopPrev returns the member before e, or the head if e is the first
// member. It never returns nil.
//
//go:nosplit
func (e *Entry) LoopPrev() *Entry {
	return e.prev
}

// First returns the first member of list l, or nil if the list is empty. It
// never returns the head itself. A nil l is accepted and yields nil.
//
//go:nosplit
func (l *Entry) First() *Entry {
	if l.Empty() {
		return nil
	}
	return l.next
}

// Last returns the last member of list l, or nil if the list is empty. It
// never returns the head itself. A nil l is accepted and yields nil.
//
//go:nosplit
func (l *Entry) Last() *Entry {
	if l.Empty() {
		return nil
	}
	return l.prev
}

// Len returns the number of members of list l, not counting the head.
//
// NOTE: This is an O(n) operation.
//
//go:nosplit
func (l *Entry) Len() (count int) {
	for e := l.LoopFirst(); e != l; e = e.LoopNext() {
		count++
	}
	return count
}

// All returns an iterator over the members of list l, first to last. No
// member of l may be unlinked during the iteration; use AllSafe when the
// loop body removes the current entry.
func (l *Entry) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for e := l.LoopFirst(); e != l; e = e.LoopNext() {
			if !yield(e) {
				return
			}
		}
	}
}

// AllSafe returns an iterator over the members of list l, first to last,
// that captures the next cursor before yielding each entry. The entry
// currently yielded may be unlinked by the loop body. Unlinking any other
// member invalidates the captured cursor and is not safe.
func (l *Entry) AllSafe() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		e := l.LoopFirst()
		next := e.LoopNext()
		for e != l {
			if !yield(e) {
				return
			}
			e = next
			next = next.LoopNext()
		}
	}
}

// Backward returns an iterator over the members of list l, last to first.
// Like All, it is not safe against unlinking members during the iteration.
func (l *Entry) Backward() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for e := l.LoopLast(); e != l; e = e.LoopPrev() {
			if !yield(e) {
				return
			}
		}
	}
}

// Splice moves all members of list m to the back of list l, preserving
// their order, and leaves m reinitialized as an empty list. An empty or nil
// m is a no-op. Splicing a list into itself is undefined.
//
//go:nosplit
func (l *Entry) Splice(m *Entry) {
	if m.Empty() {
		return
	}

	// Attach the front of m to the back of l, then close the cycle through
	// m's back.
	first := m.next
	last := m.prev
	first.prev = l.prev
	l.prev.next = first
	last.next = l
	l.prev = last

	m.Init()
}

// Swap exchanges the link state of the heads a and b: the members of a
// become the members of b and vice versa, and each moved member's neighbor
// pointers are repaired to reference its new head. A head that takes over an
// empty list becomes its own empty, self-referencing list. Swapping a head
// with itself is a no-op.
//
// Both a and b must be initialized heads. Swapping a head with a member of
// its own list is undefined.
//
//go:nosplit
func Swap(a, b *Entry) {
	t := *a
	*a = *b
	*b = t

	// A head whose record came from an empty list now points at the other
	// head; make it point at itself. Otherwise repair the back-pointers of
	// the adopted neighbors.
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
