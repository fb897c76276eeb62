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

// Package source reads course records from files and databases and
// loads them into a course index.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cybrota/courseplanner/coursetree"
)

// Source produces already parsed course records
type Source interface {
	Name() string
	Read(ctx context.Context) ([]coursetree.Course, error)
}

// Supported formats
const (
	FormatAuto     = "auto"
	FormatCSV      = "csv"
	FormatJSONC    = "jsonc"
	FormatHTML     = "html"
	FormatPostgres = "postgres"
)

var ErrUnknownFormat = errors.New("unknown course source format")

// Options carries the per-format settings used by Open
type Options struct {
	CSVHeader    bool
	HTMLSelector string
	Logger       *slog.Logger
}

// Open picks a source for location. With FormatAuto the format is taken
// from the file extension, and postgres:// URLs select FormatPostgres.
func Open(location, format string, opts Options) (Source, error) {
	if format == "" || format == FormatAuto {
		format = detectFormat(location)
	}

	switch strings.ToLower(format) {
	case FormatCSV:
		return &CSV{Path: location, Header: opts.CSVHeader, Logger: opts.Logger}, nil
	case FormatJSONC, "json":
		return &JSONC{Path: location}, nil
	case FormatHTML, "htm":
		return &HTMLTable{Path: location, Selector: opts.HTMLSelector, Logger: opts.Logger}, nil
	case FormatPostgres, "postgresql":
		return &Postgres{URL: location}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func detectFormat(location string) string {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return FormatPostgres
	}
	switch filepath.Ext(lower) {
	case ".json", ".jsonc":
		return FormatJSONC
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatCSV
	}
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// makeCourse builds a course from the column layout shared by the CSV and
// HTML sources: id, title, then any number of prerequisite columns.
// Empty prerequisite cells are dropped.
func makeCourse(cells []string) (coursetree.Course, error) {
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) < 2 {
		return coursetree.Course{}, fmt.Errorf("expected at least 2 columns, got %d", len(cells))
	}
	if cells[0] == "" {
		return coursetree.Course{}, errors.New("empty course id")
	}
	if cells[1] == "" {
		return coursetree.Course{}, fmt.Errorf("course %s has no title", cells[0])
	}

	c := coursetree.Course{ID: cells[0], Title: cells[1]}
	for _, prereq := range cells[2:] {
		if prereq != "" {
			c.Prerequisites = append(c.Prerequisites, prereq)
		}
	}
	return c, nil
}
