package logic

import "github.com/hy4ri/tasks-tui/internal/api"

// Message types
type statusMsg struct{ msg string }
type tasksLoadedMsg struct{ tasks []api.Task }
type tasksLoadFailedMsg struct{ err error }
type taskCreatedMsg struct{ task api.Task }
type taskCreateFailedMsg struct{ err error }
