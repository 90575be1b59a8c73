package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label       string
	placeholder string
	secret      bool
}

// form is a vertical stack of text inputs bound to one menu action.
type form struct {
	act    action
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(act action, title string, fields ...formField) form {
	f := form{act: act, title: title}
	for i, fd := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fd.placeholder
		ti.CharLimit = 256
		if fd.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if i == 0 {
			ti.Focus()
		}
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// update returns submitted=true once enter is pressed on the last field.
func (f form) update(msg tea.Msg) (form, bool, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, true, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			return f.move(1), false, nil
		case "shift+tab", "up":
			return f.move(-1), false, nil
		case "enter":
			if f.focus == len(f.inputs)-1 {
				return f, true, nil
			}
			return f.move(1), false, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, false, cmd
}

func (f form) move(delta int) form {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + n) % n
	f.inputs[f.focus].Focus()
	return f
}

func (f form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (f form) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(f.title))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		b.WriteString(t.Label.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(t.Help.Render("tab/↓ next • shift+tab/↑ previous • enter submit • esc cancel"))
	return b.String()
}
