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

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/courseplanner/coursetree"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// shapeLabel is the text of one index node in the shape viewer
type shapeLabel struct {
	course coursetree.Course
	side   coursetree.Side
	titles bool
}

func (l shapeLabel) String() string {
	text := l.course.ID
	if l.titles {
		text += "  " + l.course.Title
	}
	if l.side == coursetree.SideRoot {
		return text
	}
	return l.side.String() + " " + text
}

// buildShapeNodes mirrors the index layout as termui tree nodes. Walk
// visits in pre-order, so the parent of a node at depth d is the last
// node seen at depth d-1.
func buildShapeNodes(tree *coursetree.Tree, titles bool) []*widgets.TreeNode {
	var roots []*widgets.TreeNode
	var path []*widgets.TreeNode

	tree.Walk(func(c coursetree.Course, depth int, side coursetree.Side) bool {
		node := &widgets.TreeNode{
			Value:    shapeLabel{course: c, side: side, titles: titles},
			Expanded: true,
		}
		if depth == 0 {
			roots = append(roots, node)
		} else {
			parent := path[depth-1]
			parent.Nodes = append(parent.Nodes, node)
		}
		path = append(path[:depth], node)
		return true
	})
	return roots
}

const shapeKeys = `[j/k](fg:green) move  [<enter>](fg:green) fold  [E/C](fg:green) expand/collapse all  [q](fg:green) quit`

// runShapeViewer shows the index layout as a foldable termui tree
func runShapeViewer(tree *coursetree.Tree, titles bool) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	shape := widgets.NewTree()
	shape.Title = fmt.Sprintf(" Course Index Shape (%d courses, height %d) ", tree.Len(), tree.Height())
	shape.TextStyle = StyleText()
	shape.SelectedRowStyle = StylePrimary()
	shape.BorderStyle = StyleBorder(true)
	shape.WrapText = false
	shape.SetNodes(buildShapeNodes(tree, titles))

	keys := widgets.NewParagraph()
	keys.Title = " Keyboard Shortcuts "
	keys.Text = shapeKeys
	keys.TextStyle = StyleTextMuted()
	keys.BorderStyle = StyleBorder(false)

	layout := func(width, height int) {
		shape.SetRect(0, 0, width, height-3)
		keys.SetRect(0, height-3, width, height)
	}
	layout(ui.TerminalDimensions())
	ui.Render(shape, keys)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "j", "<Down>":
			shape.ScrollDown()
		case "k", "<Up>":
			shape.ScrollUp()
		case "g", "<Home>":
			shape.ScrollTop()
		case "G", "<End>":
			shape.ScrollBottom()
		case "<Enter>":
			shape.ToggleExpand()
		case "E":
			shape.ExpandAll()
		case "C":
			shape.CollapseAll()
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			layout(payload.Width, payload.Height)
			ui.Clear()
		}
		ui.Render(shape, keys)
	}
}
