package api

// Task is a single entry of the task list.
type Task struct {
	ID      int    `json:"id"`
	Content string `json:"task"`

	// Completed is tracked on the client only. It is never encoded into a
	// request and never decoded from a response.
	Completed bool `json:"-"`
}

// CreateTaskRequest is the body of a task creation request.
type CreateTaskRequest struct {
	Content string `json:"task"`
}
