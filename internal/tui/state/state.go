// Package state holds the task list view state and its pure transitions.
package state

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/config"
	"github.com/hy4ri/tasks-tui/internal/logging"
	"github.com/hy4ri/tasks-tui/internal/tui/styles"
)

// Fixed user-facing failure messages.
const (
	ErrLoadTasks = "Tasks could not be loaded."
	ErrAddTask   = "Could not add task."
)

// Focus represents which control receives key presses.
type Focus int

const (
	FocusList Focus = iota
	FocusInput
)

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Log    *log.Logger

	// Data
	Tasks []api.Task

	// Pending input for the add form
	Input textinput.Model

	// Request state. One flag is shared by load and create.
	Loading bool
	Err     string

	Filter Filter

	// UI state
	Focus     Focus
	Cursor    int
	StatusMsg string
	ShowHelp  bool
	ShowHints bool
	Width     int
	Height    int

	// Components
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState
}

// New creates the initial state. A nil config or logger is replaced by defaults.
func New(client *api.Client, cfg *config.Config, logger *log.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	input := textinput.New()
	input.Placeholder = "What's on your plan?"
	input.Prompt = ""
	input.Width = 40

	return &State{
		Client:    client,
		Config:    cfg,
		Log:       logger,
		Tasks:     []api.Task{},
		Input:     input,
		Filter:    Filter(cfg.UI.DefaultFilter),
		Focus:     FocusList,
		ShowHints: cfg.UI.ShowHints,
		Spinner:   s,
		Keymap:    NewKeymap(cfg.UI.VimMode),
		KeyState:  &KeyState{},
	}
}

// Visible returns the tasks that pass the active filter.
func (s *State) Visible() []api.Task {
	return FilterTasks(s.Tasks, s.Filter)
}

// SetFilter switches the active filter and keeps the cursor on the visible list.
func (s *State) SetFilter(f Filter) {
	s.Filter = f
	s.ClampCursor()
}

// ToggleCompleted flips the completion flag of the task with the given id.
func (s *State) ToggleCompleted(id int) {
	s.Tasks = ToggleTask(s.Tasks, id)
	s.ClampCursor()
}

// ReplaceTasks installs a freshly loaded collection.
func (s *State) ReplaceTasks(tasks []api.Task) {
	s.Tasks = ResetCompletion(tasks)
	s.ClampCursor()
}

// AppendTask adds a newly created task to the end of the collection.
func (s *State) AppendTask(task api.Task) {
	task.Completed = false
	s.Tasks = append(s.Tasks, task)
	s.ClampCursor()
}

// SelectedTask returns the visible task under the cursor, or nil.
func (s *State) SelectedTask() *api.Task {
	visible := s.Visible()
	if s.Cursor < 0 || s.Cursor >= len(visible) {
		return nil
	}
	task := visible[s.Cursor]
	return &task
}

// ClampCursor keeps the cursor within the visible list.
func (s *State) ClampCursor() {
	n := len(s.Visible())
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// MoveCursor moves the cursor by delta within the visible list.
func (s *State) MoveCursor(delta int) {
	s.Cursor += delta
	s.ClampCursor()
}
