package state

import "github.com/hy4ri/tasks-tui/internal/api"

// Filter selects which tasks are displayed.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterDone Filter = "done"
	FilterOpen Filter = "open"
)

// Filters lists the known filters in display order.
var Filters = []Filter{FilterAll, FilterDone, FilterOpen}

// Label returns the button caption for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterDone:
		return "Done"
	case FilterOpen:
		return "Open"
	default:
		return "All"
	}
}

// Next returns the filter that follows f in display order.
// Unknown filters advance to done, the same as all.
func (f Filter) Next() Filter {
	switch f {
	case FilterDone:
		return FilterOpen
	case FilterOpen:
		return FilterAll
	default:
		return FilterDone
	}
}

// Matches reports whether task passes the filter. Unknown filters match everything.
func (f Filter) Matches(task api.Task) bool {
	switch f {
	case FilterDone:
		return task.Completed
	case FilterOpen:
		return !task.Completed
	default:
		return true
	}
}

// FilterTasks returns a new slice with the tasks that pass f, in order.
// The input slice is not modified.
func FilterTasks(tasks []api.Task, f Filter) []api.Task {
	result := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

// ToggleTask returns a copy of tasks where the record with id has its
// completion inverted. Missing ids leave the copy identical.
func ToggleTask(tasks []api.Task, id int) []api.Task {
	result := make([]api.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t.Completed = !t.Completed
		}
		result[i] = t
	}
	return result
}

// ResetCompletion returns a copy of tasks with every completion flag cleared.
func ResetCompletion(tasks []api.Task) []api.Task {
	result := make([]api.Task, len(tasks))
	for i, t := range tasks {
		t.Completed = false
		result[i] = t
	}
	return result
}
