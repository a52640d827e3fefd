package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/tui/state"
)

// LoadTasks starts a reload of the whole task collection.
// It does not check Loading; callers driven by keys do that.
func (h *Handler) LoadTasks() tea.Cmd {
	h.Loading = true
	h.Err = ""
	h.Log.Debug("loading tasks")

	client := h.Client
	return func() tea.Msg {
		tasks, err := client.GetTasks()
		if err != nil {
			return tasksLoadFailedMsg{err}
		}
		return tasksLoadedMsg{tasks}
	}
}

// AddTask submits the pending input as a new task.
// Empty input is submitted as-is.
func (h *Handler) AddTask() tea.Cmd {
	h.Loading = true
	h.Err = ""

	req := api.CreateTaskRequest{Content: h.Input.Value()}
	h.Log.Debug("creating task", "task", req.Content)

	client := h.Client
	return func() tea.Msg {
		task, err := client.CreateTask(req)
		if err != nil {
			return taskCreateFailedMsg{err}
		}
		return taskCreatedMsg{*task}
	}
}

func (h *Handler) handleTasksLoaded(msg tasksLoadedMsg) tea.Cmd {
	h.Loading = false
	h.ReplaceTasks(msg.tasks)
	h.Log.Info("tasks loaded", "count", len(msg.tasks))
	return nil
}

func (h *Handler) handleTasksLoadFailed(msg tasksLoadFailedMsg) tea.Cmd {
	h.Loading = false
	h.Err = state.ErrLoadTasks
	h.Log.Error("load tasks failed", "err", msg.err)
	return nil
}

func (h *Handler) handleTaskCreated(msg taskCreatedMsg) tea.Cmd {
	h.Loading = false
	h.AppendTask(msg.task)
	h.Input.SetValue("")
	h.StatusMsg = "Task added"
	h.Log.Info("task created", "id", msg.task.ID)

	if !h.Config.UI.Notifications {
		return nil
	}

	content := msg.task.Content
	notify := h.notify
	logger := h.Log
	return func() tea.Msg {
		if err := notify("Task added", content); err != nil {
			logger.Warn("desktop notification failed", "err", err)
		}
		return nil
	}
}

func (h *Handler) handleTaskCreateFailed(msg taskCreateFailedMsg) tea.Cmd {
	h.Loading = false
	h.Err = state.ErrAddTask
	h.Log.Error("create task failed", "err", msg.err)
	return nil
}

// handleCopy copies the description of the task under the cursor.
func (h *Handler) handleCopy() tea.Cmd {
	task := h.SelectedTask()
	if task == nil {
		return nil
	}

	content := task.Content
	copyFn := h.copy
	logger := h.Log
	return func() tea.Msg {
		if err := copyFn(content); err != nil {
			logger.Warn("clipboard write failed", "err", err)
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied to clipboard"}
	}
}
