package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionList_Cursor(t *testing.T) {
	l := NewOptionList([]string{"bond", "trust"})
	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "bond", cur)

	l.Up()
	assert.Equal(t, 0, l.Cursor)

	l.Down()
	l.Down()
	cur, _ = l.Current()
	assert.Equal(t, "trust", cur, "cursor stays on the last option")

	_, ok = l.At(2)
	assert.False(t, ok)
	_, ok = NewOptionList(nil).Current()
	assert.False(t, ok)
}

func TestIndexForKey(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"4", 3, true},
		{"a", 0, true},
		{"d", 3, true},
		{"0", 0, false},
		{"z", 0, false},
		{"enter", 0, false},
	}
	for _, tt := range tests {
		got, ok := IndexForKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.key)
		}
	}
}

func TestOptionList_View(t *testing.T) {
	l := NewOptionList([]string{"visa", "bond"})
	view := l.View()
	assert.Contains(t, view, "A)  visa")
	assert.Contains(t, view, "B)  bond")
}

func TestMenu_Navigation(t *testing.T) {
	picked := ""
	m := NewMenu([]MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "Travel", Action: func() tea.Cmd { picked = "travel"; return nil }},
		{Label: "Health", Action: func() tea.Cmd { picked = "health"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "cannot move onto a disabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "health", picked)
}

func TestProgressBar_Clamps(t *testing.T) {
	full := ProgressBar{Percent: 2, Width: 20}.View()
	empty := ProgressBar{Percent: -1, Width: 20}.View()
	assert.NotEmpty(t, full)
	assert.NotEmpty(t, empty)
}
