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

// Insert adds a course keyed by its ID.
// If the ID is already present the tree is left unchanged and false is
// returned.
func (tree *Tree) Insert(c Course) bool {
	added := false
	tree.root, added = tree.insert(tree.root, c)
	if added {
		tree.count++
	}
	return added
}

// internal routine for insert, returns the possibly new subtree root
func (tree *Tree) insert(n *node, c Course) (*node, bool) {
	if n == nil {
		return tree.newNode(c.clone()), true
	}

	added := false
	switch {
	case c.ID < n.course.ID:
		n.left, added = tree.insert(n.left, c)
	case c.ID > n.course.ID:
		n.right, added = tree.insert(n.right, c)
	default:
		// duplicate: keep the stored course
	}
	return n, added
}
