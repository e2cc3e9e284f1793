package ui

import (
	"fmt"
	"strings"

	"commandapi/runner"
)

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("commandapi"))
	b.WriteString(sourceStyle.Render(a.source))
	b.WriteString("\n\n")
	b.WriteString(a.search.View())
	b.WriteString("\n\n")

	switch a.mode {
	case modeForm:
		b.WriteString(a.form.view(a.width))
	default:
		b.WriteString(a.viewList(max(a.height-a.output.Height-10, 3)))
	}

	switch a.mode {
	case modeDelete:
		if cmd, ok := a.selected(); ok {
			b.WriteString("\n")
			b.WriteString(warningStyle.Render(fmt.Sprintf("Delete '%s'? (y/n)", cmd.HowTo)))
			b.WriteString("\n")
		}
	case modeParam:
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Value for {{%s}}: ", a.params.current())))
		b.WriteString(a.params.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(outputTitleStyle.Render("OUTPUT"))
	b.WriteString("\n")
	b.WriteString(borderStyle.Width(a.width - 4).Render(a.output.View()))
	b.WriteString("\n")

	if a.err != "" {
		b.WriteString(errorStyle.Render("Error: " + a.err))
		b.WriteString("\n")
	}
	if a.status != "" {
		b.WriteString(successStyle.Render(a.status))
		b.WriteString("\n")
	}

	switch a.mode {
	case modeList:
		b.WriteString(a.help.ShortHelpView(keys.listHelp()))
	case modeForm:
		b.WriteString(a.help.ShortHelpView(keys.formHelp()))
	case modeDelete:
		b.WriteString(a.help.ShortHelpView(keys.confirmHelp()))
	}

	return appStyle.Render(b.String())
}

// viewList renders at most height commands, two lines each, scrolled so the
// cursor is visible.
func (a *App) viewList(height int) string {
	if len(a.filtered) == 0 {
		if len(a.commands) == 0 {
			return mutedStyle.Render("No commands yet. Press ctrl+a to add one.") + "\n"
		}
		return mutedStyle.Render("Nothing matches.") + "\n"
	}

	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}
	end := min(start+height, len(a.filtered))

	var lines []string
	for i := start; i < end; i++ {
		cmd := a.filtered[i]

		prefix, style := "  ", normalStyle
		if i == a.cursor {
			prefix, style = "▸ ", selectedStyle
		}
		head := style.Render(prefix + cmd.HowTo)
		if cmd.Platform != "" {
			badge := platformStyle
			if !runner.MatchesPlatform(cmd.Platform) {
				badge = foreignPlatformStyle
			}
			head += " " + badge.Render(cmd.Platform)
		}

		lines = append(lines, head, cmdPreviewStyle.Render("  "+truncate(cmd.CommandLine, a.width-10)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func truncate(s string, n int) string {
	if n < 4 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
