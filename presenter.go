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
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/courseplanner/coursetree"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCBOR = "cbor"
)

func validFormat(format string) bool {
	switch format {
	case formatText, formatJSON, formatYAML, formatCBOR:
		return true
	}
	return false
}

// notFoundRecord is what structured formats emit for a missing course
type notFoundRecord struct {
	ID    string `json:"id" yaml:"id" cbor:"id"`
	Found bool   `json:"found" yaml:"found" cbor:"found"`
}

// Presenter writes courses in one output format
type Presenter struct {
	out    io.Writer
	format string
}

func NewPresenter(out io.Writer, format string) (*Presenter, error) {
	if format == "" {
		format = formatText
	}
	format = strings.ToLower(format)
	if !validFormat(format) {
		return nil, fmt.Errorf("unknown output format %q (want text, json, yaml or cbor)", format)
	}
	return &Presenter{out: out, format: format}, nil
}

// Course prints a single course. The text form is
//
//	CSCI400: Large Software Development
//	Prerequisites: CSCI301, CSCI350
func (p *Presenter) Course(c coursetree.Course) error {
	if p.format != formatText {
		return p.encode(c)
	}

	prereqs := "None"
	if len(c.Prerequisites) > 0 {
		prereqs = strings.Join(c.Prerequisites, ", ")
	}
	_, err := fmt.Fprintf(p.out, "%s: %s\nPrerequisites: %s\n", c.ID, c.Title, prereqs)
	return err
}

func (p *Presenter) NotFound(id string) error {
	if p.format != formatText {
		return p.encode(notFoundRecord{ID: id, Found: false})
	}
	_, err := fmt.Fprintf(p.out, "Course Id %s not found.\n", id)
	return err
}

// Listing prints one "ID, Title" line per course in the order the
// sequence yields them. Structured formats encode the whole list.
func (p *Presenter) Listing(seq iter.Seq[coursetree.Course]) error {
	if p.format != formatText {
		courses := []coursetree.Course{}
		for c := range seq {
			courses = append(courses, c)
		}
		return p.encode(courses)
	}

	for c := range seq {
		if _, err := fmt.Fprintf(p.out, "%s, %s\n", c.ID, c.Title); err != nil {
			return err
		}
	}
	return nil
}

func (p *Presenter) encode(v any) error {
	switch p.format {
	case formatJSON:
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(p.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case formatCBOR:
		data, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.out.Write(data)
		return err
	}
	return fmt.Errorf("unknown output format %q", p.format)
}

// courseLookup is satisfied by *coursetree.Tree and *coursetree.Guarded
type courseLookup interface {
	Search(id string) (coursetree.Course, bool)
}

// CourseMarkdown renders the detail page shown in the terminal UI.
// Prerequisite titles are resolved through tree.
func CourseMarkdown(c coursetree.Course, tree courseLookup) string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s\n\n", c.ID))
	content.WriteString(fmt.Sprintf("**%s**\n\n", c.Title))

	if len(c.Prerequisites) == 0 {
		content.WriteString("No prerequisites.\n")
		return content.String()
	}

	content.WriteString("## Prerequisites\n\n")
	for _, id := range c.Prerequisites {
		if prereq, found := tree.Search(id); found {
			content.WriteString(fmt.Sprintf("* **%s** %s\n", prereq.ID, prereq.Title))
		} else {
			content.WriteString(fmt.Sprintf("* **%s** _(not in catalog)_\n", id))
		}
	}
	return content.String()
}
