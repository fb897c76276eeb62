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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/PuerkitoBio/goquery"

	"github.com/cybrota/courseplanner/coursetree"
)

const defaultHTMLSelector = "table"

// HTMLTable reads courses from the rows of an HTML table, such as a
// saved catalog page. Cells follow the CSV column layout; rows without
// td cells (headers) are ignored.
type HTMLTable struct {
	Path     string
	Selector string // CSS selector of the table(s), "table" if empty
	Logger   *slog.Logger
}

func (s *HTMLTable) Name() string {
	return "html:" + s.Path
}

func (s *HTMLTable) Read(ctx context.Context) ([]coursetree.Course, error) {
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

func (s *HTMLTable) parse(ctx context.Context, r io.Reader) ([]coursetree.Course, error) {
	log := logger(s.Logger)

	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}

	selector := s.Selector
	if selector == "" {
		selector = defaultHTMLSelector
	}

	var courses []coursetree.Course
	rows := document.Find(selector).Find("tr")
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}

		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}

		texts := cells.Map(func(_ int, cell *goquery.Selection) string {
			return cell.Text()
		})
		c, err := makeCourse(texts)
		if err != nil {
			log.Warn("skipping course row", "source", s.Path, "row", i+1, "error", err)
			return true
		}
		courses = append(courses, c)
		return true
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}
