package api

import "fmt"

// GetTasks returns the full task collection in server order.
// Completion flags are always false on the returned records. A 2xx response
// without a JSON array (empty body or null) is an error, not an empty list.
func (c *Client) GetTasks() ([]Task, error) {
	var tasks []Task
	if err := c.Get("/tasks", &tasks); err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	if tasks == nil {
		return nil, fmt.Errorf("failed to get tasks: %w", ErrEmptyResponse)
	}
	return tasks, nil
}

// CreateTask creates a new task and returns the record assigned by the server.
func (c *Client) CreateTask(req CreateTaskRequest) (*Task, error) {
	var task *Task
	if err := c.Post("/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("failed to create task: %w", ErrEmptyResponse)
	}
	return task, nil
}
