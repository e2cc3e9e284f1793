package ui

import (
	"context"

	"commandapi/db"
	"commandapi/model"
	"commandapi/runner"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeDelete
	modeParam
)

// App is the bubbletea model of the browser. Every change goes straight to
// the store; the list is reloaded from it afterwards.
type App struct {
	ctx    context.Context
	store  db.Store
	source string

	commands []model.Command
	filtered []model.Command

	mode   mode
	cursor int
	width  int
	height int
	err    string
	status string

	search textinput.Model
	help   help.Model
	form   *form
	params *paramPrompt

	output      viewport.Model
	outputLines []string
	outputChan  chan runner.OutputMsg
	cancelRun   context.CancelFunc
}

// NewApp returns the browser over store. source names where store lives and
// is shown in the title.
func NewApp(ctx context.Context, store db.Store, source string) (*App, error) {
	commands, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	search := textinput.New()
	search.Placeholder = "Search commands..."
	search.Focus()

	return &App{
		ctx:      ctx,
		store:    store,
		source:   source,
		commands: commands,
		filtered: commands,
		search:   search,
		help:     help.New(),
		output:   viewport.New(80, 10),
	}, nil
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width - 4
		a.height = msg.Height - 2
		a.output.Width = a.width - 4
		a.output.Height = a.height / 3
		a.help.Width = a.width
		return a, nil

	case outputMsg:
		return a, a.handleOutput(msg)

	case tea.KeyMsg:
		a.err = ""
		a.status = ""

		if key.Matches(msg, keys.Quit) {
			a.stop()
			return a, tea.Quit
		}

		switch a.mode {
		case modeList:
			return a, a.updateList(msg)
		case modeForm:
			return a, a.updateForm(msg)
		case modeDelete:
			return a, a.updateDelete(msg)
		case modeParam:
			return a, a.updateParam(msg)
		}
	}

	return a, nil
}

func (a *App) selected() (model.Command, bool) {
	if len(a.filtered) == 0 {
		return model.Command{}, false
	}
	return a.filtered[a.cursor], true
}

func (a *App) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, keys.Down):
		if a.cursor < len(a.filtered)-1 {
			a.cursor++
		}
	case key.Matches(msg, keys.Run):
		if cmd, ok := a.selected(); ok {
			return a.runCommand(cmd)
		}
	case key.Matches(msg, keys.Add):
		a.openForm(nil)
	case key.Matches(msg, keys.Edit):
		if cmd, ok := a.selected(); ok {
			a.openForm(&cmd)
		}
	case key.Matches(msg, keys.Delete):
		if _, ok := a.selected(); ok {
			a.mode = modeDelete
		}
	case key.Matches(msg, keys.Stop):
		if a.running() {
			a.stop()
			a.status = "Stopped"
		}
	case key.Matches(msg, keys.Clear):
		a.search.SetValue("")
		a.applyFilter()
	default:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		a.applyFilter()
		return cmd
	}
	return nil
}

func (a *App) openForm(editing *model.Command) {
	a.mode = modeForm
	a.form = newForm(editing)
	a.search.Blur()
}

func (a *App) backToList() tea.Cmd {
	a.mode = modeList
	a.form = nil
	a.params = nil
	return a.search.Focus()
}

func (a *App) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Cancel):
		return a.backToList()
	case key.Matches(msg, keys.Next):
		return a.form.move(1)
	case key.Matches(msg, keys.Prev):
		return a.form.move(-1)
	case key.Matches(msg, keys.Submit):
		return a.saveForm()
	default:
		return a.form.update(msg)
	}
}

func (a *App) saveForm() tea.Cmd {
	cmd := a.form.command()
	if cmd.HowTo == "" || cmd.CommandLine == "" {
		a.err = "How-to and command line are required"
		return nil
	}

	if a.form.editing == nil {
		if _, err := a.store.Add(a.ctx, cmd); err != nil {
			a.err = err.Error()
			return nil
		}
		a.status = "Added!"
	} else {
		if err := a.store.Update(a.ctx, a.form.editing.ID, cmd); err != nil {
			a.err = err.Error()
			return nil
		}
		a.status = "Updated!"
	}

	a.reload()
	return a.backToList()
}

func (a *App) updateDelete(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Yes):
		if cmd, ok := a.selected(); ok {
			if err := a.store.Remove(a.ctx, cmd.ID); err != nil {
				a.err = err.Error()
			} else {
				a.status = "Deleted!"
				a.reload()
			}
		}
		a.mode = modeList
	case key.Matches(msg, keys.No):
		a.mode = modeList
	}
	return nil
}

func (a *App) runCommand(cmd model.Command) tea.Cmd {
	names := runner.ExtractParams(cmd.CommandLine)
	if len(names) == 0 {
		return a.start(cmd, nil)
	}
	a.mode = modeParam
	a.params = newParamPrompt(cmd, names)
	a.search.Blur()
	return nil
}

func (a *App) updateParam(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Cancel):
		return a.backToList()
	case key.Matches(msg, keys.Submit):
		if !a.params.accept() {
			return nil
		}
		p := a.params
		return tea.Batch(a.backToList(), a.start(p.cmd, p.values))
	default:
		var cmd tea.Cmd
		a.params.input, cmd = a.params.input.Update(msg)
		return cmd
	}
}

func (a *App) reload() {
	commands, err := a.store.List(a.ctx)
	if err != nil {
		a.err = err.Error()
		return
	}
	a.commands = commands
	a.applyFilter()
}

func (a *App) applyFilter() {
	defer func() {
		if a.cursor >= len(a.filtered) {
			a.cursor = max(0, len(a.filtered)-1)
		}
	}()

	query := a.search.Value()
	if query == "" {
		a.filtered = a.commands
		return
	}

	targets := make([]string, len(a.commands))
	for i, c := range a.commands {
		targets[i] = c.HowTo + " " + c.Platform + " " + c.CommandLine
	}

	matches := fuzzy.Find(query, targets)
	a.filtered = make([]model.Command, len(matches))
	for i, m := range matches {
		a.filtered[i] = a.commands[m.Index]
	}
}
