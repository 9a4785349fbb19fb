package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_Matches(t *testing.T) {
	k := defaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"enter presses", tea.KeyMsg{Type: tea.KeyEnter}, k.Press},
		{"space presses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, k.Press},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, k.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit},
		{"? toggles help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, k.Help},
		{"esc closes", tea.KeyMsg{Type: tea.KeyEsc}, k.Close},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	k := defaultKeyMap()

	assert.Len(t, k.ShortHelp(), 3)
	assert.Len(t, k.FullHelp(), 2)
	assert.Equal(t, "space/enter", k.Press.Help().Key)
}

func TestHandleKeyMsg_Unhandled(t *testing.T) {
	m := newTestModel(t)

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.False(t, handled)
	assert.Nil(t, cmd)
}
