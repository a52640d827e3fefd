// Package tui provides the terminal user interface for the task list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/config"
	"github.com/hy4ri/tasks-tui/internal/tui/logic"
	"github.com/hy4ri/tasks-tui/internal/tui/state"
	"github.com/hy4ri/tasks-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App instance.
func NewApp(client *api.Client, cfg *config.Config, logger *log.Logger) *App {
	s := state.New(client, cfg, logger)
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
