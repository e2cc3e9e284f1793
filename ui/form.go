package ui

import (
	"strings"

	"commandapi/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldHowTo = iota
	fieldPlatform
	fieldCommandLine
	fieldCount
)

var fieldLabels = [fieldCount]string{"How to", "Platform", "Command line"}

// form edits one command. editing is nil while adding a new one.
type form struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	editing *model.Command
}

func newForm(editing *model.Command) *form {
	f := &form{editing: editing}

	f.inputs[fieldHowTo] = textinput.New()
	f.inputs[fieldHowTo].Placeholder = "what it does, e.g. list files with details"
	f.inputs[fieldPlatform] = textinput.New()
	f.inputs[fieldPlatform].Placeholder = "Linux, Windows, macOS, any..."
	f.inputs[fieldCommandLine] = textinput.New()
	f.inputs[fieldCommandLine].Placeholder = "ls -la {{dir}}"

	if editing != nil {
		f.inputs[fieldHowTo].SetValue(editing.HowTo)
		f.inputs[fieldPlatform].SetValue(editing.Platform)
		f.inputs[fieldCommandLine].SetValue(editing.CommandLine)
	}
	f.inputs[fieldHowTo].Focus()
	return f
}

func (f *form) title() string {
	if f.editing == nil {
		return "Add Command"
	}
	return "Edit Command"
}

// move shifts focus by delta fields, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) command() model.Command {
	return model.Command{
		HowTo:       strings.TrimSpace(f.inputs[fieldHowTo].Value()),
		Platform:    strings.TrimSpace(f.inputs[fieldPlatform].Value()),
		CommandLine: strings.TrimSpace(f.inputs[fieldCommandLine].Value()),
	}
}

func (f *form) view(width int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(f.title()))
	b.WriteString("\n\n")

	for i := range f.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i] + ": "))
		style := inputStyle
		if i == f.focus {
			style = focusedInputStyle
		}
		b.WriteString(style.Width(max(width-20, 10)).Render(f.inputs[i].View()))
		b.WriteString("\n\n")
	}
	return b.String()
}
