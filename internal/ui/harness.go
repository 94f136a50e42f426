package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
// Commands run synchronously; batches are expanded in order and spinner ticks
// are dropped so animations never loop.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model and runs its Init
// command.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		h.processCmd(model.Init())
	}
	return h
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.deliver(msg)
}

// SendKey sends a key press described the way tea.KeyMsg.String prints it,
// e.g. "enter", "alt+s", "O" or "1".
func (h *Harness) SendKey(k string) {
	h.Send(keyMsg(k))
}

func (h *Harness) deliver(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil, spinner.TickMsg:
		return
	case tea.QuitMsg:
		h.quit = true
		return
	case tea.BatchMsg:
		for _, cmd := range msg {
			h.processCmd(cmd)
		}
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	h.deliver(cmd())
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

func keyMsg(k string) tea.KeyMsg {
	alt := false
	if len(k) > len("alt+") && k[:len("alt+")] == "alt+" {
		alt = true
		k = k[len("alt+"):]
	}
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "pgup":
		msg = tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		msg = tea.KeyMsg{Type: tea.KeyPgDown}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	msg.Alt = alt
	return msg
}
