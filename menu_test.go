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
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `MATH201,Discrete Mathematics
CSCI300,Introduction to Algorithms,CSCI200,MATH201
CSCI350,Operating Systems,CSCI300
CSCI101,Introduction to Programming in C++,CSCI100
CSCI100,Introduction to Computer Science
CSCI301,Advanced Programming in C++,CSCI101
CSCI400,Large Software Development,CSCI301,CSCI350
CSCI200,Data Structures,CSCI101
`

// newTestPlanner writes the catalog to a temp file and returns a planner
// reading it, with progress output and logging silenced
func newTestPlanner(t *testing.T, catalog string) *planner {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.csv")
	if err := os.WriteFile(path, []byte(catalog), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	config := defaultConfig()
	config.Data.Path = path
	config.Loader.ShowProgress = false

	p := newPlanner(&config, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.progress = io.Discard
	return p
}

func runMenuWith(t *testing.T, p *planner, input string) string {
	t.Helper()
	var out bytes.Buffer
	runMenu(context.Background(), strings.NewReader(input), &out, p)
	return out.String()
}

func TestMenuSession(t *testing.T) {
	p := newTestPlanner(t, testCatalog)

	out := runMenuWith(t, p, "1\n2\n3 CSCI400\n3\nMATH999\n9\n")

	expected := []string{
		"Welcome to the course planner.",
		"8 read, 8 loaded, 0 duplicates skipped",
		"Here is a sample schedule:\n\nCSCI100, Introduction to Computer Science\nCSCI101, Introduction to Programming in C++\n",
		"MATH201, Discrete Mathematics\n",
		"CSCI400: Large Software Development\nPrerequisites: CSCI301, CSCI350\n",
		"What course do you want to know about? Course Id MATH999 not found.\n",
		"Good bye.\n",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("menu output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestMenuOptions(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected []string
		Absent   []string
	}{
		{
			Name:     "invalid option",
			Input:    "7\nabc\n9\n",
			Expected: []string{"7 is not a valid option.", "abc is not a valid option.", "Good bye."},
		},
		{
			Name:     "list before load",
			Input:    "2\n9\n",
			Expected: []string{"No courses loaded."},
			Absent:   []string{"Here is a sample schedule:"},
		},
		{
			Name:     "remove then search",
			Input:    "1\n4 CSCI400\n3 CSCI400\n4 CSCI400\n9\n",
			Expected: []string{"Course Id CSCI400 removed.", "Course Id CSCI400 not found."},
		},
		{
			Name:     "pre-order and post-order",
			Input:    "1\n5\n6\n9\n",
			Expected: []string{"Courses in pre-order:\n\nMATH201, Discrete Mathematics\nCSCI300,", "Courses in post-order:"},
		},
		{
			Name:     "end of input exits",
			Input:    "1\n",
			Expected: []string{"Good bye."},
		},
		{
			Name:     "end of input at prompt exits",
			Input:    "3\n",
			Expected: []string{"What course do you want to know about? ", "Good bye."},
		},
		{
			Name:     "missing file",
			Input:    "1 /no/such/course.csv\n9\n",
			Expected: []string{"Loading course file /no/such/course.csv", "Failed to load courses:"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := newTestPlanner(t, testCatalog)
			out := runMenuWith(t, p, tc.Input)
			for _, want := range tc.Expected {
				if !strings.Contains(out, want) {
					t.Errorf("menu output missing %q\n--- output ---\n%s", want, out)
				}
			}
			for _, unwanted := range tc.Absent {
				if strings.Contains(out, unwanted) {
					t.Errorf("menu output unexpectedly contains %q", unwanted)
				}
			}
		})
	}
}

func TestMenuReloadReplacesIndex(t *testing.T) {
	p := newTestPlanner(t, testCatalog)
	other := filepath.Join(t.TempDir(), "other.csv")
	if err := os.WriteFile(other, []byte("ENGL101,Composition\n"), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	out := runMenuWith(t, p, "1\n1 "+other+"\n2\n9\n")

	if p.index.Len() != 1 {
		t.Errorf("index has %d courses after reload; want 1", p.index.Len())
	}
	if !strings.Contains(out, "ENGL101, Composition") {
		t.Errorf("listing missing reloaded course\n%s", out)
	}
	if p.location != other {
		t.Errorf("planner location = %q; want %q", p.location, other)
	}
}
