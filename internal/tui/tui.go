// Package tui implements the interactive task and aide browser.
//
// The model is single-threaded inside the bubbletea event loop; every
// mutation goes through the session, which keeps the similarity indexes in
// step with the store.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/samba-rgb/AIDE/internal/models"
	"github.com/samba-rgb/AIDE/internal/search"
	"github.com/samba-rgb/AIDE/internal/session"
)

type tab int

const (
	tabTasks tab = iota
	tabAides
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	tabStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("240"))
	activeTab     = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Model is the bubbletea model for the browser.
type Model struct {
	session *session.Session

	tasks []*models.Task
	aides []*models.AideSummary

	active    tab
	cursor    int
	filter    textinput.Model
	filtering bool
	status    string
	err       error
}

// New builds the model and loads both lists.
func New(s *session.Session) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	ti.Width = 24

	m := Model{session: s, filter: ti}
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the TUI and blocks until the user quits.
func Run(s *session.Session) error {
	m, err := New(s)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) reload() error {
	tasks, err := m.session.Tasks()
	if err != nil {
		return err
	}
	aides, err := m.session.Aides()
	if err != nil {
		return err
	}
	m.tasks = tasks
	m.aides = aides
	m.clampCursor()
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch key.String() {
		case "esc":
			m.filtering = false
			m.filter.SetValue("")
			m.filter.Blur()
		case "enter":
			m.filtering = false
			m.filter.Blur()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.clampCursor()
			return m, cmd
		}
		m.clampCursor()
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.active = (m.active + 1) % 2
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.visibleLen()-1 {
			m.cursor++
		}
	case "/":
		m.filtering = true
		m.filter.Focus()
	case "s":
		m.cycleStatus()
	case "p":
		m.cyclePriority()
	case "r":
		m.err = m.reload()
	}
	return m, nil
}

func (m *Model) cycleStatus() {
	task := m.selectedTask()
	if task == nil {
		return
	}
	next := map[models.TaskStatus]models.TaskStatus{
		models.TaskStatusCreated:    models.TaskStatusInProgress,
		models.TaskStatusInProgress: models.TaskStatusCompleted,
		models.TaskStatusCompleted:  models.TaskStatusCreated,
	}[task.Status]

	if _, err := m.session.SetTaskStatus(task.Name, next); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("%s -> %s", task.Name, next)
	m.err = m.reload()
}

func (m *Model) cyclePriority() {
	task := m.selectedTask()
	if task == nil {
		return
	}
	next := task.Priority + 1
	if next > models.PriorityLowest {
		next = models.PriorityHighest
	}

	if _, err := m.session.SetTaskPriority(task.Name, next); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("%s priority %d", task.Name, next)
	m.err = m.reload()
}

func (m *Model) selectedTask() *models.Task {
	if m.active != tabTasks {
		return nil
	}
	tasks := m.visibleTasks()
	if m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

// visibleTasks applies the live filter using the resolver's string
// heuristic, so the same typo tolerance works here.
func (m Model) visibleTasks() []*models.Task {
	q := m.filter.Value()
	if q == "" {
		return m.tasks
	}
	var out []*models.Task
	for _, t := range m.tasks {
		if search.StringSimilarity(q, t.Name) >= search.FuzzyMatchThreshold {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) visibleAides() []*models.AideSummary {
	q := m.filter.Value()
	if q == "" {
		return m.aides
	}
	var out []*models.AideSummary
	for _, a := range m.aides {
		if search.StringSimilarity(q, a.Name) >= search.FuzzyMatchThreshold {
			out = append(out, a)
		}
	}
	return out
}

func (m Model) visibleLen() int {
	if m.active == tabTasks {
		return len(m.visibleTasks())
	}
	return len(m.visibleAides())
}

func (m *Model) clampCursor() {
	if n := m.visibleLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("aide"))
	tabs := []string{"Tasks", "Aides"}
	for i, name := range tabs {
		if tab(i) == m.active {
			b.WriteString(activeTab.Render(name))
		} else {
			b.WriteString(tabStyle.Render(name))
		}
	}
	b.WriteString("\n\n")

	if m.active == tabTasks {
		for i, t := range m.visibleTasks() {
			line := fmt.Sprintf("%s  p%d  %s", t.Name, t.Priority, t.Status)
			if i == m.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	} else {
		for i, a := range m.visibleAides() {
			line := fmt.Sprintf("%s  [%s]  %d entries", a.Name, a.Type, a.DataCount)
			if i == m.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString("/" + m.filter.View() + "\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString(statusStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString(dimStyle.Render("tab: switch  j/k: move  s: status  p: priority  /: filter  r: reload  q: quit"))
	return b.String()
}
