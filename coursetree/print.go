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

package coursetree

import (
	"fmt"
	"io"
)

// Print draws the tree sideways, right sub-trees above their parent,
// and returns its height
func (tree *Tree) Print(w io.Writer, titles bool) int {
	return printTree(w, tree.root, "", SideRoot, titles)
}

func printTree(w io.Writer, n *node, prefix string, side Side, titles bool) int {
	if n == nil {
		return 0
	}
	rd := 0
	if n.right != nil {
		t := "       "
		if side == SideLeft {
			t = "|      "
		}
		rd = printTree(w, n.right, prefix+t, SideRight, titles)
	}

	switch side {
	case SideRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case SideLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case SideRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if titles {
		fmt.Fprintf(w, "%s  %q\n", n.course.ID, n.course.Title)
	} else {
		fmt.Fprintf(w, "%s\n", n.course.ID)
	}

	ld := 0
	if n.left != nil {
		t := "       "
		if side == SideRight {
			t = "|      "
		}
		ld = printTree(w, n.left, prefix+t, SideLeft, titles)
	}
	return 1 + max(ld, rd)
}
