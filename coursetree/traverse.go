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
	"iter"
	"strings"
)

// Traverse returns a lazy sequence of the courses in the given order.
// The sequence can be ranged over any number of times; it does not
// modify the tree, but the tree must not be modified while it runs.
func (tree *Tree) Traverse(order Order) iter.Seq[Course] {
	return func(yield func(Course) bool) {
		switch order {
		case PreOrder:
			preOrder(tree.root, yield)
		case PostOrder:
			postOrder(tree.root, yield)
		default:
			inOrder(tree.root, yield)
		}
	}
}

// InOrder yields the courses in ascending ID order
func (tree *Tree) InOrder() iter.Seq[Course] {
	return tree.Traverse(InOrder)
}

// PreOrder yields each node before its sub-trees
func (tree *Tree) PreOrder() iter.Seq[Course] {
	return tree.Traverse(PreOrder)
}

// PostOrder yields each node after its sub-trees
func (tree *Tree) PostOrder() iter.Seq[Course] {
	return tree.Traverse(PostOrder)
}

// each walker returns false once the consumer has stopped the iteration

func inOrder(n *node, yield func(Course) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.course.clone()) && inOrder(n.right, yield)
}

func preOrder(n *node, yield func(Course) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.course.clone()) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func postOrder(n *node, yield func(Course) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, yield) && postOrder(n.right, yield) && yield(n.course.clone())
}

// WithPrefix yields, in ascending order, every course whose ID starts
// with prefix. Sub-trees that cannot hold a match are not visited.
func (tree *Tree) WithPrefix(prefix string) iter.Seq[Course] {
	return func(yield func(Course) bool) {
		prefixScan(tree.root, prefix, yield)
	}
}

// IDs sharing a prefix form one contiguous run starting at the prefix
// itself, so a node past the run rules out its whole right sub-tree
func prefixScan(n *node, prefix string, yield func(Course) bool) bool {
	if n == nil {
		return true
	}
	id := n.course.ID
	matches := strings.HasPrefix(id, prefix)
	if id >= prefix {
		if !prefixScan(n.left, prefix, yield) {
			return false
		}
	}
	if matches {
		if !yield(n.course.clone()) {
			return false
		}
	}
	if id < prefix || matches {
		return prefixScan(n.right, prefix, yield)
	}
	return true
}

// Side tells which slot of its parent a node occupies
type Side int

const (
	SideRoot Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "L"
	case SideRight:
		return "R"
	default:
		return "root"
	}
}

// Walk visits the nodes in pre-order, reporting the depth (root is 0)
// and side of each one. Returning false from fn stops the walk.
func (tree *Tree) Walk(fn func(c Course, depth int, side Side) bool) {
	walk(tree.root, 0, SideRoot, fn)
}

func walk(n *node, depth int, side Side, fn func(Course, int, Side) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.course.clone(), depth, side) &&
		walk(n.left, depth+1, SideLeft, fn) &&
		walk(n.right, depth+1, SideRight, fn)
}
