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

// Accessors needed by the external tests but kept out of the public API.

// TestingAllocations returns how many nodes the tree has created and
// released over its lifetime
func (tree *Tree) TestingAllocations() (allocated int, released int) {
	return tree.allocated, tree.released
}

// TestingSwapRootChildren breaks the ordering invariant on purpose
func (tree *Tree) TestingSwapRootChildren() {
	if tree.root != nil {
		tree.root.left, tree.root.right = tree.root.right, tree.root.left
	}
}

// TestingLinkRootToItself creates a cycle on purpose
func (tree *Tree) TestingLinkRootToItself() {
	if tree.root != nil && tree.root.right == nil {
		tree.root.right = tree.root
	}
}

var TestingFindMinID = func(tree *Tree) string {
	return findMin(tree.root).course.ID
}
