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

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/courseplanner/coursetree"
)

// Inserter is the part of the index a load needs. Both
// *coursetree.Tree and *coursetree.Guarded satisfy it.
type Inserter interface {
	Insert(c coursetree.Course) bool
}

type LoadOptions struct {
	ShowProgress bool
	Progress     io.Writer // progress bar output, os.Stderr if nil
	Logger       *slog.Logger
}

// Stats summarises one load
type Stats struct {
	Source     string
	Read       int // records produced by the source
	Inserted   int
	Duplicates int // records whose ID was already in the index
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: %d read, %d loaded, %d duplicates skipped", s.Source, s.Read, s.Inserted, s.Duplicates)
}

// Load reads every record from src and inserts it into dst.
// Duplicate IDs keep the first record seen; they are counted and logged
// but do not fail the load.
func Load(ctx context.Context, src Source, dst Inserter, opts LoadOptions) (Stats, error) {
	log := logger(opts.Logger)
	stats := Stats{Source: src.Name()}

	courses, err := src.Read(ctx)
	if err != nil {
		return stats, err
	}
	stats.Read = len(courses)

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && len(courses) > 0 {
		w := opts.Progress
		if w == nil {
			w = os.Stderr
		}
		bar = progressbar.NewOptions(len(courses),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("📚 Loading courses..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(w)
			}),
		)
	}

	for _, c := range courses {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if dst.Insert(c) {
			stats.Inserted++
		} else {
			stats.Duplicates++
			log.Warn("duplicate course id ignored", "source", stats.Source, "id", c.ID)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	log.Debug("courses loaded", "source", stats.Source, "read", stats.Read, "inserted", stats.Inserted, "duplicates", stats.Duplicates)
	return stats, nil
}
