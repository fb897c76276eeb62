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
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/cybrota/courseplanner/coursetree"
	"github.com/cybrota/courseplanner/source"
)

// planner ties the configured data source to the shared course index
type planner struct {
	config   *Config
	location string // file path or database URL
	index    *coursetree.Guarded
	logger   *slog.Logger
	progress io.Writer
}

func newPlanner(config *Config, logger *slog.Logger) *planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &planner{
		config:   config,
		location: config.dataLocation(),
		index:    coursetree.NewGuarded(nil),
		logger:   logger,
		progress: os.Stderr,
	}
}

func (p *planner) openSource(location string) (source.Source, error) {
	return source.Open(location, p.config.Data.Format, source.Options{
		CSVHeader:    p.config.Data.CSVHeader,
		HTMLSelector: p.config.Data.HTMLSelector,
		Logger:       p.logger,
	})
}

// buildTree reads location into a new tree owned by the caller
func (p *planner) buildTree(ctx context.Context, location string) (*coursetree.Tree, source.Stats, error) {
	src, err := p.openSource(location)
	if err != nil {
		return nil, source.Stats{}, err
	}

	tree := coursetree.New()
	stats, err := source.Load(ctx, src, tree, source.LoadOptions{
		ShowProgress: p.config.Loader.ShowProgress,
		Progress:     p.progress,
		Logger:       p.logger,
	})
	if err != nil {
		tree.Clear()
		return nil, stats, err
	}
	return tree, stats, nil
}

// load replaces the shared index with the courses at location. The old
// index stays in place when the load fails.
func (p *planner) load(ctx context.Context, location string) (source.Stats, error) {
	if location == "" {
		location = p.location
	}
	tree, stats, err := p.buildTree(ctx, location)
	if err != nil {
		return stats, err
	}
	p.index.Replace(tree)
	p.location = location
	return stats, nil
}

func (p *planner) close() {
	released := p.index.Clear()
	p.logger.Debug("course index released", "nodes", released)
}
