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

// Remove deletes the course with the given ID.
// It returns false, and leaves the tree unchanged, if the ID is absent.
func (tree *Tree) Remove(id string) bool {
	removed := false
	tree.root, removed = tree.remove(tree.root, id)
	if removed {
		tree.count--
	}
	return removed
}

// internal delete routine, returns the new root of the subtree
func (tree *Tree) remove(n *node, id string) (*node, bool) {
	if n == nil {
		return nil, false // id not in tree
	}

	removed := false
	switch {
	case id < n.course.ID:
		n.left, removed = tree.remove(n.left, id)
		return n, removed
	case id > n.course.ID:
		n.right, removed = tree.remove(n.right, id)
		return n, removed
	}

	// found: n is the node to delete
	switch {
	case n.left == nil && n.right == nil:
		tree.freeNode(n)
		return nil, true

	case n.left == nil:
		child := n.right
		tree.freeNode(n)
		return child, true

	case n.right == nil:
		child := n.left
		tree.freeNode(n)
		return child, true
	}

	// two children: n keeps its slot and takes the payload of its
	// in-order successor, which is then removed from the right subtree
	successor := findMin(n.right)
	n.course = successor.course
	n.right, _ = tree.remove(n.right, successor.course.ID)
	return n, true
}

// lowest node in a non-empty sub-tree
func findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}
