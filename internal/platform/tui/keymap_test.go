package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snack/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"r", core.ActionRestart},
		{"enter", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
