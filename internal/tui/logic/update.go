// Package logic implements the update loop of the task list UI.
package logic

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/tasks-tui/internal/tui/state"
)

// Handler applies messages to the shared state.
type Handler struct {
	*state.State

	copy   func(text string) error
	notify func(title, message string) error
}

// NewHandler creates a handler wired to the system clipboard and notifier.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State: s,
		copy:  clipboard.WriteAll,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Init loads the task list on startup.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.LoadTasks(),
	)
}

// Update applies msg and returns the follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case tasksLoadedMsg:
		return h.handleTasksLoaded(msg)

	case tasksLoadFailedMsg:
		return h.handleTasksLoadFailed(msg)

	case taskCreatedMsg:
		return h.handleTaskCreated(msg)

	case taskCreateFailedMsg:
		return h.handleTaskCreateFailed(msg)
	}

	// Forward non-key messages (like blink) to the input
	if h.Focus == state.FocusInput {
		var cmd tea.Cmd
		h.Input, cmd = h.Input.Update(msg)
		return cmd
	}

	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	h.StatusMsg = ""

	if h.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			h.ShowHelp = false
		}
		return nil
	}

	if h.Focus == state.FocusInput {
		return h.handleInputKey(msg)
	}

	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	switch action {
	case "up":
		h.MoveCursor(-1)
	case "down":
		h.MoveCursor(1)
	case "top":
		h.Cursor = 0
		h.ClampCursor()
	case "bottom":
		h.Cursor = len(h.Visible()) - 1
		h.ClampCursor()
	case "complete":
		if task := h.SelectedTask(); task != nil {
			h.ToggleCompleted(task.ID)
		}
	case "filter_all":
		h.SetFilter(state.FilterAll)
	case "filter_done":
		h.SetFilter(state.FilterDone)
	case "filter_open":
		h.SetFilter(state.FilterOpen)
	case "cycle_filter":
		h.SetFilter(h.Filter.Next())
	case "refresh":
		// Reload control is disabled while a request is in flight
		if h.Loading {
			return nil
		}
		return h.LoadTasks()
	case "focus_input", "switch_focus":
		return h.focusInput()
	case "copy":
		return h.handleCopy()
	case "help":
		h.ShowHelp = true
	case "toggle_hints":
		h.ShowHints = !h.ShowHints
	case "quit":
		return tea.Quit
	}

	return nil
}

func (h *Handler) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		// Add control is disabled while a request is in flight
		if h.Loading {
			return nil
		}
		return h.AddTask()
	case "esc", "tab":
		h.Focus = state.FocusList
		h.Input.Blur()
		return nil
	}

	var cmd tea.Cmd
	h.Input, cmd = h.Input.Update(msg)
	return cmd
}

func (h *Handler) focusInput() tea.Cmd {
	h.Focus = state.FocusInput
	h.KeyState.Reset()
	return h.Input.Focus()
}
