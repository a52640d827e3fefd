// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for active controls
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	barBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the page heading
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// DateLabel is the static date caption in the filter bar
	DateLabel = lipgloss.NewStyle().
			Foreground(Subtle)

	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)

// Task styles
var (
	// TaskItem is the base style for a task row
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for the row under the cursor
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// TaskCompleted is applied to the description of completed tasks
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// Checkbox is the style for the completion box
	Checkbox = lipgloss.NewStyle().
			Foreground(Subtle)

	// CheckboxChecked is the style for a ticked completion box
	CheckboxChecked = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// EmptyList is shown when no task passes the filter
	EmptyList = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)

// Button styles
var (
	// Button is an enabled control
	Button = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Highlight)

	// ButtonDisabled is a control that ignores input
	ButtonDisabled = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Subtle).
			Faint(true)

	// FilterActive is the highlighted filter
	FilterActive = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Underline(true).
			Foreground(Highlight)

	// FilterInactive is any other filter
	FilterInactive = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Subtle)
)

// Input styles
var (
	// Input is the style for the add box
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for the add box while typing
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Status styles
var (
	// ErrorMessage is the request failure line
	ErrorMessage = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// StatusMessage is for transient success notes
	StatusMessage = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// StatusBar is the key hint footer
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(barBackground).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(barBackground)

	// StatusBarText is for hint descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(barBackground)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSection is for group headings in help
	HelpSection = lipgloss.NewStyle().
			Bold(true)
)
