package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field describes one text input of a form.
type field struct {
	label       string
	placeholder string
	secret      bool
}

// form is a vertical stack of text inputs with one focused at a time.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, fd := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fd.placeholder
		ti.CharLimit = 256
		if fd.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.labels[i] = fd.label
		f.inputs[i] = ti
	}
	return f
}

// focusFirst focuses the first input and returns its blink command.
func (f *form) focusFirst() tea.Cmd {
	f.focus = 0
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[0].Focus()
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	n := len(f.inputs)
	if n == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = ((f.focus+delta)%n + n) % n
	return f.inputs[f.focus].Focus()
}

// value returns the text of input i.
func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

// setValue replaces the text of input i.
func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

// update handles focus keys and forwards everything else to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Next):
			return f.move(1)
		case key.Matches(km, keys.Prev):
			return f.move(-1)
		}
	}

	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders the inputs. flagged marks inputs whose label is drawn as invalid.
func (f *form) view(flagged map[int]bool) string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := labelStyle.Render(f.labels[i])
		if flagged[i] {
			label = errorStyle.Render(f.labels[i] + " (invalid)")
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}
