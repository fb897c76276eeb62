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

// a node in the tree
type node struct {
	course Course
	left   *node // exclusively owned left sub-tree
	right  *node // exclusively owned right sub-tree
}

// Tree holds the root slot of the index
type Tree struct {
	root  *node
	count int

	// allocation accounting, checked by tests and by Check
	allocated int
	released  int
}

// New creates an initially empty tree
func New() *Tree {
	return &Tree{}
}

// Len is the number of courses currently in the tree
func (tree *Tree) Len() int {
	return tree.count
}

// IsEmpty is true if the tree holds no courses
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the course stored at the root slot
func (tree *Tree) Root() (Course, bool) {
	if tree.root == nil {
		return Course{}, false
	}
	return tree.root.course.clone(), true
}

// Height is the number of nodes on the longest root-to-leaf path
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

func (tree *Tree) newNode(c Course) *node {
	tree.allocated++
	return &node{course: c}
}

// drop a node that has already been unlinked from its parent slot
func (tree *Tree) freeNode(n *node) {
	n.left = nil
	n.right = nil
	n.course = Course{}
	tree.released++
}

// Clear releases every node and leaves the tree empty.
// It returns the number of nodes released; clearing an empty tree
// releases nothing.
func (tree *Tree) Clear() int {
	before := tree.released
	tree.releaseSubtree(tree.root)
	tree.root = nil
	tree.count = 0
	return tree.released - before
}

// post-order so that both children are gone before their owner
func (tree *Tree) releaseSubtree(n *node) {
	if n == nil {
		return
	}
	tree.releaseSubtree(n.left)
	tree.releaseSubtree(n.right)
	tree.freeNode(n)
}
