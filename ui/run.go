package ui

import (
	"context"
	"fmt"
	"strings"

	"commandapi/model"
	"commandapi/runner"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// outputMsg is a line of output from the command reading from ch.
type outputMsg struct {
	runner.OutputMsg
	ch chan runner.OutputMsg
}

// paramPrompt collects values for the {{param}} placeholders of a command
// line, one at a time.
type paramPrompt struct {
	cmd    model.Command
	names  []string
	values map[string]string
	input  textinput.Model
}

func newParamPrompt(cmd model.Command, names []string) *paramPrompt {
	p := &paramPrompt{cmd: cmd, names: names, values: map[string]string{}}
	p.input = textinput.New()
	p.input.Placeholder = names[0]
	p.input.Focus()
	return p
}

func (p *paramPrompt) current() string {
	return p.names[len(p.values)]
}

// accept records the typed value and reports whether every param has one.
func (p *paramPrompt) accept() bool {
	p.values[p.current()] = p.input.Value()
	if len(p.values) == len(p.names) {
		return true
	}
	p.input.SetValue("")
	p.input.Placeholder = p.current()
	return false
}

// start runs the command line, params substituted, and returns the tea.Cmd
// delivering its first line of output.
func (a *App) start(cmd model.Command, values map[string]string) tea.Cmd {
	line := runner.SubstituteParams(cmd.CommandLine, values)

	a.stop()
	a.outputLines = []string{cmdPreviewStyle.Render("$ " + line), ""}
	if !runner.MatchesPlatform(cmd.Platform) {
		a.outputLines = append(a.outputLines, warningStyle.Render(
			fmt.Sprintf("warning: this command is meant for %s", cmd.Platform),
		))
	}
	a.refreshOutput()

	ctx, cancel := context.WithCancel(a.ctx)
	a.cancelRun = cancel
	a.outputChan = make(chan runner.OutputMsg)
	go runner.Run(ctx, line, a.outputChan)

	return waitForOutput(a.outputChan)
}

// stop kills the running command, if any.
func (a *App) stop() {
	if a.cancelRun != nil {
		a.cancelRun()
		a.cancelRun = nil
	}
}

func (a *App) running() bool {
	return a.cancelRun != nil
}

func (a *App) handleOutput(msg outputMsg) tea.Cmd {
	if msg.ch != a.outputChan {
		// left over from a stopped command: drain it so its goroutine ends
		if msg.Done {
			return nil
		}
		return waitForOutput(msg.ch)
	}

	if msg.Done {
		a.stop()
		a.outputChan = nil
		if msg.ErrMsg != "" {
			a.outputLines = append(a.outputLines, errorStyle.Render("Error: "+msg.ErrMsg))
		}
		a.refreshOutput()
		return nil
	}

	line := msg.Line
	if msg.IsErr {
		line = errorStyle.Render(line)
	}
	a.outputLines = append(a.outputLines, line)
	a.refreshOutput()
	return waitForOutput(a.outputChan)
}

func (a *App) refreshOutput() {
	a.output.SetContent(strings.Join(a.outputLines, "\n"))
	a.output.GotoBottom()
}

func waitForOutput(ch chan runner.OutputMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return outputMsg{OutputMsg: runner.OutputMsg{Done: true}, ch: ch}
		}
		return outputMsg{OutputMsg: msg, ch: ch}
	}
}
