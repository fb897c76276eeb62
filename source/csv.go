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
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cybrota/courseplanner/coursetree"
)

// CSV reads rows of the form
//
//	CSCI300,Introduction to Algorithms,CSCI200,MATH201
//
// Rows may have any number of prerequisite columns. Malformed rows are
// logged and skipped.
type CSV struct {
	Path   string
	Header bool // skip the first row
	Logger *slog.Logger
}

func (s *CSV) Name() string {
	return "csv:" + s.Path
}

func (s *CSV) Read(ctx context.Context) ([]coursetree.Course, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("course file %s not found", s.Path)
		}
		return nil, err
	}
	defer file.Close()

	return s.parse(ctx, file)
}

func (s *CSV) parse(ctx context.Context, r io.Reader) ([]coursetree.Course, error) {
	log := logger(s.Logger)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // prerequisite columns vary per row
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var courses []coursetree.Course
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
		}

		if row == 1 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
			if s.Header {
				continue
			}
		}

		c, err := makeCourse(record)
		if err != nil {
			log.Warn("skipping course row", "source", s.Path, "row", row, "error", err)
			continue
		}
		courses = append(courses, c)
	}
	return courses, nil
}
