package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samba-rgb/AIDE/internal/db"
	"github.com/samba-rgb/AIDE/internal/models"
	"github.com/samba-rgb/AIDE/internal/search"
	"github.com/samba-rgb/AIDE/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "aide.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	s, err := session.New(database, search.AssumeYes{})
	require.NoError(t, err)

	_, _, err = s.OpenTask("deploy-staging")
	require.NoError(t, err)
	_, _, err = s.OpenTask("fix-login-bug")
	require.NoError(t, err)

	m, err := New(s)
	require.NoError(t, err)
	return m
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	panic("unknown key " + s)
}

func update(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestNewLoadsLists(t *testing.T) {
	m := newTestModel(t)

	assert.Len(t, m.tasks, 2)
	// The seeded task_log aide is always present.
	require.Len(t, m.aides, 1)
	assert.Equal(t, "task_log", m.aides[0].Name)
}

func TestCursorMovementClamps(t *testing.T) {
	m := newTestModel(t)

	m = update(m, "j", "j", "j")
	assert.Equal(t, 1, m.cursor)

	m = update(m, "k", "k", "k")
	assert.Equal(t, 0, m.cursor)
}

func TestTabSwitchResetsCursor(t *testing.T) {
	m := newTestModel(t)

	m = update(m, "j", "tab")
	assert.Equal(t, tabAides, m.active)
	assert.Equal(t, 0, m.cursor)

	m = update(m, "tab")
	assert.Equal(t, tabTasks, m.active)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFilterUsesFuzzyHeuristic(t *testing.T) {
	m := newTestModel(t)

	m.filter.SetValue("login")
	tasks := m.visibleTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "fix-login-bug", tasks[0].Name)

	m.filter.SetValue("")
	assert.Len(t, m.visibleTasks(), 2)
}

func TestCycleStatus(t *testing.T) {
	m := newTestModel(t)

	m = update(m, "s")
	require.NoError(t, m.err)

	// List order follows priority then creation time; the first row was
	// the one cycled.
	assert.Equal(t, models.TaskStatusInProgress, m.tasks[0].Status)

	m = update(m, "s", "s")
	require.NoError(t, m.err)
	assert.Equal(t, models.TaskStatusCreated, m.tasks[0].Status)
}

func TestCyclePriorityWraps(t *testing.T) {
	// A single task keeps the cursor on the same row across reloads.
	database, err := db.Open(filepath.Join(t.TempDir(), "aide.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	s, err := session.New(database, search.AssumeYes{})
	require.NoError(t, err)
	_, _, err = s.OpenTask("only-task")
	require.NoError(t, err)
	m, err := New(s)
	require.NoError(t, err)

	wants := []int{4, 5, 1, 2}
	for _, want := range wants {
		m = update(m, "p")
		require.NoError(t, m.err)
		assert.Equal(t, want, m.tasks[0].Priority)
	}
}

func TestViewRendersRows(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "deploy-staging")
	assert.Contains(t, out, "fix-login-bug")

	m = update(m, "tab")
	out = m.View()
	assert.Contains(t, out, "task_log")
}
