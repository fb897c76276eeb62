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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/cybrota/courseplanner/coursetree"
)

// JSONC reads an array of course objects. Comments and trailing commas
// are allowed, so hand-maintained catalogs can be annotated.
//
//	[
//	  // core
//	  {"id": "CSCI100", "title": "Introduction to Computer Science"},
//	  {"id": "CSCI200", "title": "Data Structures", "prerequisites": ["CSCI101"]},
//	]
type JSONC struct {
	Path string
}

func (s *JSONC) Name() string {
	return "jsonc:" + s.Path
}

func (s *JSONC) Read(ctx context.Context) ([]coursetree.Course, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("course file %s not found", s.Path)
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decodeJSONC(s.Path, data)
}

func decodeJSONC(name string, data []byte) ([]coursetree.Course, error) {
	var courses []coursetree.Course
	if err := json.Unmarshal(jsonc.ToJSON(data), &courses); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	for i := range courses {
		courses[i].ID = strings.TrimSpace(courses[i].ID)
		if courses[i].ID == "" {
			return nil, fmt.Errorf("failed to decode %s: entry %d has no id", name, i)
		}
	}
	return courses, nil
}
