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
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/courseplanner/coursetree"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusList
	focusDetail
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput      textinput.Model
	coursesList    list.Model
	detailViewport viewport.Model

	// Data
	index     *coursetree.Guarded
	pageCache *cache.Cache

	// State
	focusIndex int
	order      coursetree.Order
	courses    []coursetree.Course
	lastQuery  string
	status     string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// courseItem is a row of the course list
type courseItem struct {
	course coursetree.Course
}

func (i courseItem) FilterValue() string { return i.course.ID }
func (i courseItem) Title() string       { return i.course.ID }
func (i courseItem) Description() string { return i.course.Title }

// InitialModel creates the initial model over a loaded index
func InitialModel(index *coursetree.Guarded, pc *cache.Cache, order coursetree.Order) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a course ID prefix, e.g. CSCI3..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	coursesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	coursesList.SetShowTitle(false)
	coursesList.SetShowHelp(false)
	coursesList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a course to see its details...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		textInput:       ti,
		coursesList:     coursesList,
		detailViewport:  detailViewport,
		index:           index,
		pageCache:       pc,
		focusIndex:      focusInput,
		order:           order,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.updateCourses("")

	return model
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == focusInput {
			m.textInput.Focus()
		} else {
			m.textInput.Blur()
		}
		return m, nil
	case "f2":
		// Prefix matches are always listed ascending
		m.order = m.order.Next()
		m.updateCourses(m.textInput.Value())
		m.status = fmt.Sprintf("Order: %s", m.order)
		return m, nil
	case "ctrl+d":
		c, ok := m.selectedCourse()
		if !ok {
			return m, nil
		}
		if m.index.Remove(c.ID) {
			ForgetPages(m.pageCache)
			m.status = fmt.Sprintf("Removed %s", c.ID)
		}
		m.updateCourses(m.textInput.Value())
		return m, nil
	case "enter":
		if m.focusIndex == focusInput {
			return m, nil
		}
		c, ok := m.selectedCourse()
		if !ok {
			return m, nil
		}
		id := c.ID
		return m, tea.Sequence(
			func() tea.Msg {
				copyToClipboard(id)
				return tea.Quit()
			},
		)
	case "pgup":
		if m.focusIndex == focusDetail {
			m.detailViewport.LineUp(m.detailViewport.Height)
			return m, nil
		}
	case "pgdown":
		if m.focusIndex == focusDetail {
			m.detailViewport.LineDown(m.detailViewport.Height)
			return m, nil
		}
	case "up", "k":
		if m.focusIndex == focusDetail {
			m.detailViewport.LineUp(1)
			return m, nil
		} else if m.focusIndex == focusList && len(m.courses) > 0 {
			if m.coursesList.Index() > 0 {
				m.coursesList.CursorUp()
			}
			m.showSelected()
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == focusDetail {
			m.detailViewport.LineDown(1)
			return m, nil
		} else if m.focusIndex == focusList && len(m.courses) > 0 {
			if m.coursesList.Index() < len(m.courses)-1 {
				m.coursesList.CursorDown()
			}
			m.showSelected()
			return m, nil
		}
	}

	if m.focusIndex == focusInput {
		m.textInput, cmd = m.textInput.Update(msg)

		currentQuery := m.textInput.Value()
		if currentQuery != m.lastQuery {
			m.updateCourses(currentQuery)
			m.lastQuery = currentQuery
		}
	}

	return m, cmd
}

func (m Model) selectedCourse() (coursetree.Course, bool) {
	i := m.coursesList.Index()
	if i < 0 || i >= len(m.courses) {
		return coursetree.Course{}, false
	}
	return m.courses[i], true
}

// updateCourses refills the list: a prefix scan when there is a query,
// the whole index in the current order otherwise
func (m *Model) updateCourses(query string) {
	prefix := strings.TrimSpace(query)
	if prefix == "" {
		m.courses = m.index.Snapshot(m.order)
	} else {
		m.courses = m.index.PrefixSnapshot(prefix)
	}

	items := make([]list.Item, len(m.courses))
	for i, c := range m.courses {
		items[i] = courseItem{course: c}
	}
	m.coursesList.SetItems(items)
	if m.coursesList.Index() >= len(items) {
		m.coursesList.Select(max(len(items)-1, 0))
	}

	if len(m.courses) == 0 {
		m.detailViewport.SetContent(fmt.Sprintf("No course ID starts with %q.", prefix))
		return
	}
	m.showSelected()
}

func (m *Model) showSelected() {
	c, ok := m.selectedCourse()
	if !ok {
		return
	}
	m.detailViewport.SetContent(m.renderPage(c))
}

// renderPage returns the glamour-rendered detail page of c, falling back
// to the raw markdown when rendering is unavailable
func (m *Model) renderPage(c coursetree.Course) string {
	markdown := CourseMarkdown(c, m.index)
	if m.glamourRenderer == nil {
		return markdown
	}

	page, err := GetOrRenderPage(m.pageCache, c.ID, func() (string, error) {
		return m.glamourRenderer.Render(markdown)
	})
	if err != nil {
		return markdown
	}
	return page
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	listWidth := (m.width / 2) - 1
	detailWidth := m.width - listWidth - 3

	inputStyle, inputTitle := m.styles.BorderBlurred, " 🔍 Search Courses"
	if m.focusIndex == focusInput {
		inputStyle, inputTitle = m.styles.BorderFocused, " 🔍 Search Courses (Active)"
	}
	m.textInput.Width = listWidth - 4

	inputBox := inputStyle.
		Width(listWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(listWidth-4).Render(inputTitle+"\n"),
			m.textInput.View(),
		))

	listStyle, listTitle := m.styles.BorderBlurred, m.listTitle()
	if m.focusIndex == focusList {
		listStyle, listTitle = m.styles.BorderFocused, m.listTitle()+"(Active) "
	}

	listBox := listStyle.
		Width(listWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(listWidth-4).Render(listTitle),
			m.coursesList.View(),
		))

	detailStyle, detailTitle := m.styles.BorderBlurred, " 📖 Course Details "
	if m.focusIndex == focusDetail {
		detailStyle, detailTitle = m.styles.BorderFocused, " 📖 Course Details (Active) "
	}

	detailBox := detailStyle.
		Width(detailWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(detailWidth-4).Render(detailTitle),
			m.detailViewport.View(),
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, detailBox)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

func (m Model) listTitle() string {
	if strings.TrimSpace(m.textInput.Value()) != "" {
		return fmt.Sprintf(" 📋 Courses (%d matches) ", len(m.courses))
	}
	return fmt.Sprintf(" 📋 Courses (%s) ", m.order)
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	listWidth := (m.width / 2) - 1
	detailWidth := m.width - listWidth - 3

	m.textInput.Width = listWidth - 4
	m.coursesList.SetSize(listWidth-2, listHeight-2)
	m.detailViewport.Width = detailWidth - 2
	m.detailViewport.Height = listHeight + inputHeight
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "f2", "ctrl+d", "esc"}
	descs := []string{"copy course id", "switch focus", "cycle order", "remove course", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	footer := strings.Join(helpEntries, " • ")
	if m.status != "" {
		footer += "  " + m.styles.SuccessMessage.Render(m.status)
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(footer)
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintf(os.Stderr, "%sFailed to copy %s: %v%s\n", Error, text, err, Reset)
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application over the planner's index
func runBubbleTeaApp(p *planner, pc *cache.Cache) error {
	order, err := coursetree.ParseOrder(p.config.Display.Order)
	if err != nil {
		return err
	}

	model := InitialModel(p.index, pc, order)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = program.Run()
	return err
}
