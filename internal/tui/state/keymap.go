package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains the list-mode key bindings.
type KeymapData struct {
	// VimMode enables letter navigation and the gg/yy sequences.
	VimMode bool

	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Quit        Key
	Help        Key
	Refresh     Key
	FocusInput  Key
	SwitchFocus Key
	ToggleHints Key

	// Task actions
	CompleteTask Key
	CopyTask     Key

	// Filters
	FilterAll   Key
	FilterDone  Key
	FilterOpen  Key
	CycleFilter Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return NewKeymap(true)
}

// NewKeymap returns the key bindings. Without vim mode, navigation is limited
// to arrows and home/end, and copying is a single "c".
func NewKeymap(vimMode bool) KeymapData {
	km := KeymapData{
		VimMode: vimMode,

		Up:     Key{Key: "up", Help: "up"},
		Down:   Key{Key: "down", Help: "down"},
		Top:    Key{Key: "home", Help: "top"},
		Bottom: Key{Key: "end", Help: "bottom"},

		Quit:        Key{Key: "q", Help: "quit"},
		Help:        Key{Key: "?", Help: "help"},
		Refresh:     Key{Key: "r", Help: "load tasks"},
		FocusInput:  Key{Key: "a", Help: "add task"},
		SwitchFocus: Key{Key: "tab", Help: "switch focus"},
		ToggleHints: Key{Key: "f1", Help: "toggle hints"},

		CompleteTask: Key{Key: "x", Help: "done/open"},
		CopyTask:     Key{Key: "c", Help: "copy"},

		FilterAll:   Key{Key: "1", Help: "all"},
		FilterDone:  Key{Key: "2", Help: "done"},
		FilterOpen:  Key{Key: "3", Help: "open"},
		CycleFilter: Key{Key: "f", Help: "next filter"},
	}

	if vimMode {
		km.Up = Key{Key: "k", Help: "up"}
		km.Down = Key{Key: "j", Help: "down"}
		km.Top = Key{Key: "g", Help: "top (gg)"}
		km.Bottom = Key{Key: "G", Help: "bottom"}
		km.CopyTask = Key{Key: "y", Help: "copy (yy)"}
	}

	return km
}

// KeyState tracks multi-key sequences (like 'gg' or 'yy').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if keymap.VimMode {
		if ks.WaitingG {
			ks.WaitingG = false
			if key == keymap.Top.Key {
				return "top", true
			}
		}

		if ks.WaitingY {
			ks.WaitingY = false
			if key == keymap.CopyTask.Key {
				return "copy", true
			}
		}

		switch key {
		case keymap.Top.Key:
			ks.WaitingG = true
			return "", true
		case keymap.CopyTask.Key:
			ks.WaitingY = true
			return "", true
		}
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Top.Key, "home":
		return "top", true
	case keymap.Bottom.Key, "end":
		return "bottom", true
	case keymap.CopyTask.Key:
		return "copy", true
	case keymap.Quit.Key:
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.FocusInput.Key, "i":
		return "focus_input", true
	case keymap.SwitchFocus.Key:
		return "switch_focus", true
	case keymap.ToggleHints.Key:
		return "toggle_hints", true
	case keymap.CompleteTask.Key, " ", "space":
		return "complete", true
	case keymap.FilterAll.Key:
		return "filter_all", true
	case keymap.FilterDone.Key:
		return "filter_done", true
	case keymap.FilterOpen.Key:
		return "filter_open", true
	case keymap.CycleFilter.Key:
		return "cycle_filter", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingY = false
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{k.topKeys() + "/" + k.Bottom.Key, "Go to top/bottom"},
		{k.SwitchFocus.Key, "Switch between input and list"},
		{"", ""},
		{"Tasks", ""},
		{k.FocusInput.Key + "/i", "Type a new task"},
		{"enter", "Add task (in input)"},
		{k.CompleteTask.Key + "/space", "Mark done/open"},
		{k.copyKeys(), "Copy task to clipboard"},
		{k.Refresh.Key, "Load previous tasks"},
		{"", ""},
		{"Filters", ""},
		{k.FilterAll.Key, "All"},
		{k.FilterDone.Key, "Done"},
		{k.FilterOpen.Key, "Open"},
		{k.CycleFilter.Key, "Next filter"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.ToggleHints.Key, "Toggle key hints"},
		{"esc", "Leave input / close help"},
		{k.Quit.Key + "/ctrl+c", "Quit"},
	}
}

func (k KeymapData) topKeys() string {
	if k.VimMode {
		return k.Top.Key + k.Top.Key
	}
	return k.Top.Key
}

func (k KeymapData) copyKeys() string {
	if k.VimMode {
		return k.CopyTask.Key + k.CopyTask.Key
	}
	return k.CopyTask.Key
}
