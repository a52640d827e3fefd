// Package ui renders the task list state.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/tui/state"
	"github.com/hy4ri/tasks-tui/internal/tui/styles"
)

const (
	title          = "Today's Tasks"
	dateLabel      = "DD.MM.YY"
	reloadLabel    = "Load previous tasks ..."
	reloadingLabel = "Loading tasks..."

	// Lines used by everything except the task rows:
	// padding, title, input box, filter bar, reload, error, footer, spacers.
	chromeHeight = 14
)

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.ShowHelp {
		return styles.App.Render(r.renderHelp())
	}

	sections := []string{
		styles.Title.Render(title),
		r.renderInputRow(),
		r.renderFilterBar(),
		r.renderTaskList(),
		r.renderReload(),
	}

	if r.Err != "" {
		sections = append(sections, styles.ErrorMessage.Render(r.Err))
	}
	if r.StatusMsg != "" {
		sections = append(sections, styles.StatusMessage.Render(r.StatusMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return styles.App.Render(content) + "\n" + r.renderStatusBar()
}

func (r *Renderer) contentWidth() int {
	w := r.Width - styles.App.GetHorizontalFrameSize()
	if w < 20 {
		w = 20
	}
	return w
}

// renderInputRow renders the add box and its button.
func (r *Renderer) renderInputRow() string {
	box := styles.Input
	if r.Focus == state.FocusInput {
		box = styles.InputFocused
	}

	addBtn := styles.Button.Render("Add")
	if r.Loading {
		addBtn = styles.ButtonDisabled.Render("Add")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, box.Render(r.Input.View()), " ", addBtn)
}

// renderFilterBar renders the static date label and the filter buttons.
func (r *Renderer) renderFilterBar() string {
	parts := []string{styles.DateLabel.Render(dateLabel), "  "}
	for _, f := range state.Filters {
		style := styles.FilterInactive
		if f == r.Filter {
			style = styles.FilterActive
		}
		parts = append(parts, style.Render(f.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderTaskList() string {
	visible := r.Visible()
	if len(visible) == 0 {
		return styles.EmptyList.Render("No tasks")
	}

	rows := r.Height - chromeHeight
	if rows < 3 {
		rows = 3
	}
	start, end := listWindow(len(visible), r.Cursor, rows)

	width := r.contentWidth()
	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(r.renderTask(visible[i], i == r.Cursor && r.Focus == state.FocusList, width))
	}

	if start > 0 || end < len(visible) {
		b.WriteString("\n")
		b.WriteString(styles.EmptyList.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(visible))))
	}

	return b.String()
}

func (r *Renderer) renderTask(task api.Task, selected bool, width int) string {
	checkbox := styles.Checkbox.Render("[ ]")
	if task.Completed {
		checkbox = styles.CheckboxChecked.Render("[x]")
	}

	// checkbox + space + row padding
	content := truncateString(task.Content, width-6)
	if task.Completed {
		content = styles.TaskCompleted.Render(content)
	}

	line := checkbox + " " + content
	if selected {
		return styles.TaskSelected.Render(line)
	}
	return styles.TaskItem.Render(line)
}

func (r *Renderer) renderReload() string {
	if r.Loading {
		return styles.ButtonDisabled.Render(r.Spinner.View() + " " + reloadingLabel)
	}
	return styles.Button.Render(reloadLabel)
}

func (r *Renderer) renderStatusBar() string {
	if !r.ShowHints {
		return styles.StatusBar.Render(styles.StatusBarKey.Render("F1") + styles.StatusBarText.Render(":keys"))
	}

	var hints []string
	if r.Focus == state.FocusInput {
		hints = []string{
			hint("enter", "add"),
			hint("esc", "list"),
			hint("ctrl+c", "quit"),
		}
	} else {
		km := r.Keymap
		hints = []string{
			hint(km.Down.Key+"/"+km.Up.Key, "move"),
			hint(km.CompleteTask.Key, km.CompleteTask.Help),
			hint(km.FocusInput.Key, km.FocusInput.Help),
			hint("1-3", "filter"),
			hint(km.Refresh.Key, km.Refresh.Help),
			hint(km.Help.Key, km.Help.Help),
			hint(km.Quit.Key, km.Quit.Help),
		}
	}
	hints = append(hints, hint("F1", "hide"))

	bar := strings.Join(hints, " ")
	return styles.StatusBar.Width(r.Width).Render(bar)
}

func hint(key, desc string) string {
	return styles.StatusBarKey.Render(key) + styles.StatusBarText.Render(":"+desc)
}

func (r *Renderer) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, item := range r.Keymap.HelpItems() {
		key, desc := item[0], item[1]
		switch {
		case key == "" && desc == "":
			b.WriteString("\n")
		case desc == "":
			b.WriteString(styles.HelpSection.Render(key))
			b.WriteString("\n")
		default:
			b.WriteString(styles.HelpKey.Width(14).Render(key))
			b.WriteString(styles.HelpDesc.Render(desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("esc/?/q to close"))
	return b.String()
}
