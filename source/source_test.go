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

package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/courseplanner/coursetree"
)

const sampleCSV = `MATH201,Discrete Mathematics
CSCI300,Introduction to Algorithms,CSCI200,MATH201
CSCI350,Operating Systems,CSCI300
CSCI101,Introduction to Programming in C++,CSCI100
CSCI100,Introduction to Computer Science
CSCI301,Advanced Programming in C++,CSCI101
CSCI400,Large Software Development,CSCI301,CSCI350
CSCI200,Data Structures,CSCI101
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCSVRead(t *testing.T) {
	src := &CSV{Path: writeFile(t, "courses.csv", sampleCSV), Logger: quietLogger()}

	courses, err := src.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 8)

	require.Equal(t, coursetree.Course{ID: "MATH201", Title: "Discrete Mathematics"}, courses[0])
	require.Equal(t, coursetree.Course{
		ID:            "CSCI400",
		Title:         "Large Software Development",
		Prerequisites: []string{"CSCI301", "CSCI350"},
	}, courses[6])
}

func TestCSVEdgeCases(t *testing.T) {
	testCases := []struct {
		name     string
		header   bool
		content  string
		expected []coursetree.Course
	}{
		{
			name:    "header row skipped",
			header:  true,
			content: "id,title,prereq1,prereq2\nCSCI100,Introduction to Computer Science,,\n",
			expected: []coursetree.Course{
				{ID: "CSCI100", Title: "Introduction to Computer Science"},
			},
		},
		{
			name:    "byte order mark and padding",
			content: "\ufeffCSCI100 , Introduction to Computer Science \n",
			expected: []coursetree.Course{
				{ID: "CSCI100", Title: "Introduction to Computer Science"},
			},
		},
		{
			name:    "windows line endings and empty prerequisite cells",
			content: "CSCI200,Data Structures,,CSCI101\r\nCSCI101,Programming,\r\n",
			expected: []coursetree.Course{
				{ID: "CSCI200", Title: "Data Structures", Prerequisites: []string{"CSCI101"}},
				{ID: "CSCI101", Title: "Programming"},
			},
		},
		{
			name:    "malformed rows skipped",
			content: "CSCI100\n,No Id\nCSCI200,\nCSCI300,Algorithms\n",
			expected: []coursetree.Course{
				{ID: "CSCI300", Title: "Algorithms"},
			},
		},
		{
			name:    "quoted title with comma",
			content: "ENGL101,\"Writing, Rhetoric\"\n",
			expected: []coursetree.Course{
				{ID: "ENGL101", Title: "Writing, Rhetoric"},
			},
		},
		{
			name:     "empty file",
			content:  "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := &CSV{Path: "inline", Header: tc.header, Logger: quietLogger()}
			courses, err := src.parse(context.Background(), strings.NewReader(tc.content))
			require.NoError(t, err)
			require.Equal(t, tc.expected, courses)
		})
	}
}

func TestCSVMissingFile(t *testing.T) {
	src := &CSV{Path: filepath.Join(t.TempDir(), "missing.csv")}
	_, err := src.Read(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestCSVCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &CSV{Path: "inline"}
	_, err := src.parse(ctx, strings.NewReader(sampleCSV))
	require.ErrorIs(t, err, context.Canceled)
}

func TestJSONCRead(t *testing.T) {
	content := `[
  // foundation courses
  {"id": "CSCI100", "title": "Introduction to Computer Science"},
  /* needs the intro */
  {"id": " CSCI101 ", "title": "Introduction to Programming in C++", "prerequisites": ["CSCI100"]},
]`
	src := &JSONC{Path: writeFile(t, "courses.jsonc", content)}

	courses, err := src.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, []coursetree.Course{
		{ID: "CSCI100", Title: "Introduction to Computer Science"},
		{ID: "CSCI101", Title: "Introduction to Programming in C++", Prerequisites: []string{"CSCI100"}},
	}, courses)
}

func TestJSONCRejectsBadInput(t *testing.T) {
	_, err := decodeJSONC("inline", []byte(`{"id": "CSCI100"}`))
	require.Error(t, err)

	_, err = decodeJSONC("inline", []byte(`[{"title": "No id"}]`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "has no id")
}

func TestHTMLTableRead(t *testing.T) {
	content := `<html><body>
<table id="catalog">
  <tr><th>Course</th><th>Title</th><th>Prerequisite</th></tr>
  <tr><td>CSCI100</td><td>Introduction to Computer Science</td><td></td></tr>
  <tr><td>CSCI200</td><td> Data Structures </td><td>CSCI101</td></tr>
  <tr><td></td><td>Broken</td></tr>
</table>
<table id="other"><tr><td>X</td><td>Ignored</td></tr></table>
</body></html>`
	src := &HTMLTable{Path: writeFile(t, "catalog.html", content), Selector: "#catalog", Logger: quietLogger()}

	courses, err := src.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, []coursetree.Course{
		{ID: "CSCI100", Title: "Introduction to Computer Science"},
		{ID: "CSCI200", Title: "Data Structures", Prerequisites: []string{"CSCI101"}},
	}, courses)

	all := &HTMLTable{Path: "inline", Logger: quietLogger()}
	courses, err = all.parse(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, courses, 3)
}

func TestOpen(t *testing.T) {
	testCases := []struct {
		location string
		format   string
		expected Source
	}{
		{"course.csv", "auto", &CSV{Path: "course.csv"}},
		{"course.txt", "", &CSV{Path: "course.txt"}},
		{"catalog.JSONC", "auto", &JSONC{Path: "catalog.JSONC"}},
		{"catalog.json", "auto", &JSONC{Path: "catalog.json"}},
		{"catalog.htm", "auto", &HTMLTable{Path: "catalog.htm"}},
		{"postgres://localhost/catalog", "auto", &Postgres{URL: "postgres://localhost/catalog"}},
		{"export.dat", "csv", &CSV{Path: "export.dat"}},
		{"catalog.dat", "HTML", &HTMLTable{Path: "catalog.dat"}},
	}
	for _, tc := range testCases {
		t.Run(tc.location, func(t *testing.T) {
			src, err := Open(tc.location, tc.format, Options{})
			require.NoError(t, err)
			require.Equal(t, tc.expected, src)
		})
	}

	_, err := Open("course.csv", "xml", Options{})
	require.ErrorIs(t, err, ErrUnknownFormat)

	src, err := Open("course.csv", "csv", Options{CSVHeader: true})
	require.NoError(t, err)
	require.True(t, src.(*CSV).Header)
}

type fakeSource struct {
	courses []coursetree.Course
	err     error
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Read(ctx context.Context) ([]coursetree.Course, error) {
	return slices.Clone(f.courses), f.err
}

func TestLoad(t *testing.T) {
	src := &fakeSource{courses: []coursetree.Course{
		{ID: "CSCI400", Title: "Large Software Development"},
		{ID: "CSCI300", Title: "Introduction to Algorithms"},
		{ID: "CSCI400", Title: "Duplicate"},
		{ID: "CSCI350", Title: "Operating Systems"},
	}}
	tree := coursetree.New()
	var progress bytes.Buffer

	stats, err := Load(context.Background(), src, tree, LoadOptions{ShowProgress: true, Progress: &progress, Logger: quietLogger()})
	require.NoError(t, err)
	require.Equal(t, Stats{Source: "fake", Read: 4, Inserted: 3, Duplicates: 1}, stats)
	require.Equal(t, "fake: 4 read, 3 loaded, 1 duplicates skipped", stats.String())
	require.NotEmpty(t, progress.String())

	c, found := tree.Search("CSCI400")
	require.True(t, found)
	require.Equal(t, "Large Software Development", c.Title)

	var listing []string
	for c := range tree.InOrder() {
		listing = append(listing, c.ID)
	}
	require.Equal(t, []string{"CSCI300", "CSCI350", "CSCI400"}, listing)
}

func TestLoadIntoGuardedTree(t *testing.T) {
	src := &CSV{Path: writeFile(t, "courses.csv", sampleCSV), Logger: quietLogger()}
	guarded := coursetree.NewGuarded(nil)

	stats, err := Load(context.Background(), src, guarded, LoadOptions{Logger: quietLogger()})
	require.NoError(t, err)
	require.Equal(t, 8, stats.Inserted)
	require.Equal(t, 8, guarded.Len())
}

func TestLoadErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), &fakeSource{err: boom}, coursetree.New(), LoadOptions{})
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tree := coursetree.New()
	src := &fakeSource{courses: []coursetree.Course{{ID: "A", Title: "a"}}}
	_, err = Load(ctx, src, tree, LoadOptions{})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, tree.Len())
}
