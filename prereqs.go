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

package main

import (
	"fmt"

	"github.com/willf/bloom"

	"github.com/cybrota/courseplanner/coursetree"
)

// False positive rate of the catalog filter. A false positive only costs
// one extra tree lookup.
const prereqFalsePositiveRate = 0.01

// MissingPrerequisite is a prerequisite reference with no matching course
type MissingPrerequisite struct {
	Course       string
	Prerequisite string
}

func (m MissingPrerequisite) String() string {
	return fmt.Sprintf("%s requires %s, which is not in the catalog", m.Course, m.Prerequisite)
}

// checkPrerequisites reports every prerequisite that names a course not in
// the tree, in course ID order. A bloom filter over the loaded IDs screens
// the references: a negative answer is final, a positive one is confirmed
// with a tree search.
func checkPrerequisites(tree *coursetree.Tree) []MissingPrerequisite {
	n := uint(tree.Len())
	if n == 0 {
		n = 1
	}
	filter := bloom.NewWithEstimates(n, prereqFalsePositiveRate)
	for c := range tree.InOrder() {
		filter.AddString(c.ID)
	}

	var missing []MissingPrerequisite
	for c := range tree.InOrder() {
		for _, prereq := range c.Prerequisites {
			if filter.TestString(prereq) && tree.Contains(prereq) {
				continue
			}
			missing = append(missing, MissingPrerequisite{Course: c.ID, Prerequisite: prereq})
		}
	}
	return missing
}
