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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Course Planner %s**

Browse a course catalog, look up a course and its prerequisites, and print a
schedule in course order. Courses are kept in a binary search tree keyed by
course ID.

Built with Go %s

# 1. Commands
* **run** (default): terminal UI with prefix search over course IDs
* **menu**: the classic numbered menu (load, list, show, remove, exit)
* **list**: print every course, --order in|pre|post, --format text|json|yaml|cbor
* **show ID...**: print courses with their prerequisites
* **shape**: view the layout of the course index, --ascii for a plain drawing
* **check**: report prerequisites missing from the catalog
* **settings**: show or create ~/.courseplanner.yaml

# 2. Data Sources
* CSV: id, title, then one column per prerequisite
* JSONC: an array of {"id", "title", "prerequisites"} objects, comments allowed
* HTML: rows of a table in the CSV column layout
* PostgreSQL: courses and course_prerequisites tables

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
