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

// Search looks for the course with the given ID.
// It returns a copy of the course, and a boolean indicating whether the
// ID was found.
func (tree *Tree) Search(id string) (Course, bool) {
	n := tree.root
	for n != nil {
		switch {
		case id < n.course.ID:
			n = n.left
		case id > n.course.ID:
			n = n.right
		default:
			return n.course.clone(), true
		}
	}
	return Course{}, false
}

// Contains reports whether the ID is present
func (tree *Tree) Contains(id string) bool {
	_, ok := tree.Search(id)
	return ok
}
