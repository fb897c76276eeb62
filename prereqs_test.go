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
	"reflect"
	"testing"

	"github.com/cybrota/courseplanner/coursetree"
)

type PrereqTestCase struct {
	Name     string
	Courses  []coursetree.Course
	Expected []MissingPrerequisite
}

func TestCheckPrerequisites(t *testing.T) {
	testCases := []PrereqTestCase{
		{
			Name:     "empty catalog",
			Courses:  nil,
			Expected: nil,
		},
		{
			Name: "all prerequisites present",
			Courses: []coursetree.Course{
				{ID: "CSCI100", Title: "Introduction to Computer Science"},
				{ID: "CSCI101", Title: "Introduction to Programming in C++", Prerequisites: []string{"CSCI100"}},
				{ID: "CSCI200", Title: "Data Structures", Prerequisites: []string{"CSCI101"}},
			},
			Expected: nil,
		},
		{
			Name: "missing prerequisites reported in id order",
			Courses: []coursetree.Course{
				{ID: "CSCI400", Title: "Large Software Development", Prerequisites: []string{"CSCI301", "CSCI350"}},
				{ID: "CSCI350", Title: "Operating Systems", Prerequisites: []string{"CSCI300"}},
				{ID: "CSCI300", Title: "Introduction to Algorithms", Prerequisites: []string{"CSCI200", "MATH201"}},
			},
			Expected: []MissingPrerequisite{
				{Course: "CSCI300", Prerequisite: "CSCI200"},
				{Course: "CSCI300", Prerequisite: "MATH201"},
				{Course: "CSCI400", Prerequisite: "CSCI301"},
			},
		},
		{
			Name: "self reference counts as present",
			Courses: []coursetree.Course{
				{ID: "MATH999", Title: "Independent Study", Prerequisites: []string{"MATH999"}},
			},
			Expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := coursetree.New()
			for _, c := range tc.Courses {
				tree.Insert(c)
			}

			got := checkPrerequisites(tree)
			if !reflect.DeepEqual(got, tc.Expected) {
				t.Errorf("checkPrerequisites() = %v; want %v", got, tc.Expected)
			}
		})
	}
}

func TestMissingPrerequisiteString(t *testing.T) {
	m := MissingPrerequisite{Course: "CSCI400", Prerequisite: "CSCI301"}
	want := "CSCI400 requires CSCI301, which is not in the catalog"
	if got := m.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
