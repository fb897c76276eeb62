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
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/courseplanner/coursetree"
)

const menuText = `Welcome to the course planner.

  1. Load Data Structure.
  2. Print Course List.
  3. Print Course.
  4. Remove Course.
  5. Print Pre-Order Listing.
  6. Print Post-Order Listing.
  9. Exit

What would you like to do? `

// menuSession reads tokenised lines from the user
type menuSession struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// next returns the words of the next input line, or false at end of input.
// Lines that fail shell-word parsing are returned as a single word.
func (s *menuSession) next() ([]string, bool) {
	if !s.scanner.Scan() {
		return nil, false
	}
	line := s.scanner.Text()
	words, err := shellwords.Parse(line)
	if err != nil {
		return []string{line}, true
	}
	return words, true
}

// ask prints a prompt and returns the first word typed, re-asking on
// blank lines
func (s *menuSession) ask(prompt string) (string, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		words, ok := s.next()
		if !ok {
			return "", false
		}
		if len(words) > 0 {
			return words[0], true
		}
	}
}

// runMenu runs the interactive course planner menu until the user picks 9
// or input ends. An option may carry its argument on the same line, as in
// "3 CSCI400".
func runMenu(ctx context.Context, in io.Reader, out io.Writer, p *planner) {
	session := &menuSession{scanner: bufio.NewScanner(in), out: out}
	presenter, _ := NewPresenter(out, formatText)

	for {
		fmt.Fprint(out, menuText)
		words, ok := session.next()
		if !ok {
			fmt.Fprintln(out)
			break
		}
		if len(words) == 0 {
			continue
		}

		choice, args := words[0], words[1:]
		if choice == "9" {
			break
		}

		switch choice {
		case "1":
			location := p.location
			if len(args) > 0 {
				location = args[0]
			}
			fmt.Fprintf(out, "Loading course file %s\n", location)
			stats, err := p.load(ctx, location)
			if err != nil {
				fmt.Fprintf(out, "Failed to load courses: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "%s\n", stats)

		case "2", "5", "6":
			if p.index.Len() == 0 {
				fmt.Fprintln(out, "No courses loaded. Choose 1 to load the data structure.")
				continue
			}
			order := map[string]coursetree.Order{
				"2": coursetree.InOrder,
				"5": coursetree.PreOrder,
				"6": coursetree.PostOrder,
			}[choice]
			if order == coursetree.InOrder {
				fmt.Fprintln(out, "Here is a sample schedule:")
			} else {
				fmt.Fprintf(out, "Courses in %s:\n", order)
			}
			fmt.Fprintln(out)
			presenter.Listing(slices.Values(p.index.Snapshot(order)))
			fmt.Fprintln(out)

		case "3":
			id, ok := argOrAsk(session, args, "What course do you want to know about? ")
			if !ok {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Good bye.")
				return
			}
			if c, found := p.index.Search(id); found {
				presenter.Course(c)
			} else {
				presenter.NotFound(id)
			}

		case "4":
			id, ok := argOrAsk(session, args, "Which course do you want to remove? ")
			if !ok {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Good bye.")
				return
			}
			if p.index.Remove(id) {
				fmt.Fprintf(out, "Course Id %s removed.\n", id)
			} else {
				presenter.NotFound(id)
			}

		default:
			fmt.Fprintf(out, "%s is not a valid option.\n", choice)
		}
	}

	fmt.Fprintln(out, "Good bye.")
}

func argOrAsk(session *menuSession, args []string, prompt string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	return session.ask(prompt)
}
