// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm

import (
	"sync"

	"code.hybscloud.com/fnx"
)

// Snapshot restores a previous version of a contact. It is one-shot: a
// snapshot that has been resumed or discarded cannot restore again.
// The function passed to Resume receives the saved version and returns
// the version to store.
type Snapshot = fnx.Affine[Contact, func(Contact) Contact]

// UndoStack keeps, per contact, the most recent previous versions.
type UndoStack struct {
	mu      sync.Mutex
	depth   int
	entries map[string][]*Snapshot
}

// NewUndoStack keeps at most depth snapshots per contact.
func NewUndoStack(depth int) *UndoStack {
	return &UndoStack{depth: max(depth, 1), entries: make(map[string][]*Snapshot)}
}

// Push records prev as the version to return to.
func (u *UndoStack) Push(prev Contact) {
	k := fnx.Once[Contact, func(Contact) Contact](fnx.Return[Contact](prev))

	u.mu.Lock()
	defer u.mu.Unlock()
	stack := append(u.entries[prev.ID], k)
	if over := len(stack) - u.depth; over > 0 {
		for _, old := range stack[:over] {
			old.Discard()
		}
		stack = append([]*Snapshot(nil), stack[over:]...)
	}
	u.entries[prev.ID] = stack
}

// Pop removes and returns the latest snapshot for id.
func (u *UndoStack) Pop(id string) fnx.Option[*Snapshot] {
	u.mu.Lock()
	defer u.mu.Unlock()
	stack := u.entries[id]
	if len(stack) == 0 {
		return fnx.None[*Snapshot]()
	}
	top := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(u.entries, id)
	} else {
		u.entries[id] = stack[:len(stack)-1]
	}
	return fnx.Some(top)
}

// Forget discards every snapshot for id.
func (u *UndoStack) Forget(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, k := range u.entries[id] {
		k.Discard()
	}
	delete(u.entries, id)
}

// Len returns the number of snapshots held for id.
func (u *UndoStack) Len(id string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.entries[id])
}
