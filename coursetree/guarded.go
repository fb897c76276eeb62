// Copyright 2025 Naren Yellavula
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

package coursetree

import (
	"slices"
	"sync"
)

// Guarded serialises access to a Tree: one writer or many readers at a
// time, each public call holding the lock for its whole duration
type Guarded struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewGuarded wraps tree, which must not be used directly afterwards.
// A nil tree starts a new empty one.
func NewGuarded(tree *Tree) *Guarded {
	if tree == nil {
		tree = New()
	}
	return &Guarded{tree: tree}
}

func (g *Guarded) Insert(c Course) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Insert(c)
}

func (g *Guarded) Remove(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Remove(id)
}

func (g *Guarded) Clear() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Clear()
}

// Replace swaps in a freshly built tree and releases the old one
func (g *Guarded) Replace(tree *Tree) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.Clear()
	g.tree = tree
}

func (g *Guarded) Search(id string) (Course, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Search(id)
}

func (g *Guarded) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Len()
}

// Snapshot collects a traversal under the read lock.
// A lazy sequence cannot be handed out because the lock would have to
// stay held while the caller consumes it.
func (g *Guarded) Snapshot(order Order) []Course {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Collect(g.tree.Traverse(order))
}

// PrefixSnapshot collects the matches of WithPrefix under the read lock
func (g *Guarded) PrefixSnapshot(prefix string) []Course {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Collect(g.tree.WithPrefix(prefix))
}
