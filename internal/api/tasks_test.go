package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockServer creates a test HTTP server for mocking API responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client.baseURL != "http://localhost:8000/api" {
		t.Errorf("unexpected base URL: %s", client.baseURL)
	}

	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}
}

func TestGetTasks(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		want       []Task
		wantErr    bool
	}{
		{
			name:       "successful request",
			body:       `[{"id":1,"task":"A"},{"id":2,"task":"B"}]`,
			statusCode: http.StatusOK,
			want:       []Task{{ID: 1, Content: "A"}, {ID: 2, Content: "B"}},
		},
		{
			name:       "server completion flag is discarded",
			body:       `[{"id":7,"task":"Done already","completed":true}]`,
			statusCode: http.StatusOK,
			want:       []Task{{ID: 7, Content: "Done already", Completed: false}},
		},
		{
			name:       "empty list",
			body:       `[]`,
			statusCode: http.StatusOK,
			want:       []Task{},
		},
		{
			name:       "empty body",
			body:       ``,
			statusCode: http.StatusOK,
			wantErr:    true,
		},
		{
			name:       "null body",
			body:       `null`,
			statusCode: http.StatusOK,
			wantErr:    true,
		},
		{
			name:       "server error",
			body:       `boom`,
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
		},
		{
			name:       "malformed json",
			body:       `{"id":`,
			statusCode: http.StatusOK,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}
				if r.URL.Path != "/tasks" {
					t.Errorf("expected path /tasks, got %s", r.URL.Path)
				}

				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			})
			defer server.Close()

			client := NewClient()
			client.baseURL = server.URL

			tasks, err := client.GetTasks()

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(tasks) != len(tt.want) {
				t.Fatalf("expected %d tasks, got %d", len(tt.want), len(tasks))
			}

			for i := range tasks {
				if tasks[i] != tt.want[i] {
					t.Errorf("task %d: expected %+v, got %+v", i, tt.want[i], tasks[i])
				}
			}
		})
	}
}

func TestGetTasks_APIError(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, "maintenance")
	})
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	_, err := client.GetTasks()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected wrapped APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", apiErr.StatusCode)
	}
	if !apiErr.IsServerError() {
		t.Error("expected IsServerError to be true")
	}
	if apiErr.Message != "maintenance" {
		t.Errorf("expected message %q, got %q", "maintenance", apiErr.Message)
	}
}

func TestGetTasks_Unreachable(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {})
	url := server.URL
	server.Close()

	client := NewClient()
	client.baseURL = url

	if _, err := client.GetTasks(); err == nil {
		t.Fatal("expected error for closed server, got nil")
	}
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name       string
		request    CreateTaskRequest
		body       string
		statusCode int
		want       Task
		wantErr    bool
	}{
		{
			name:       "successful creation",
			request:    CreateTaskRequest{Content: "New task"},
			body:       `{"id":3,"task":"New task"}`,
			statusCode: http.StatusOK,
			want:       Task{ID: 3, Content: "New task"},
		},
		{
			name:       "created status",
			request:    CreateTaskRequest{Content: "Other"},
			body:       `{"id":4,"task":"Other"}`,
			statusCode: http.StatusCreated,
			want:       Task{ID: 4, Content: "Other"},
		},
		{
			name:       "extra fields ignored",
			request:    CreateTaskRequest{Content: "Extra"},
			body:       `{"id":5,"task":"Extra","completed":true,"owner":"x"}`,
			statusCode: http.StatusOK,
			want:       Task{ID: 5, Content: "Extra"},
		},
		{
			name:       "empty description is sent",
			request:    CreateTaskRequest{Content: ""},
			body:       `{"id":6,"task":""}`,
			statusCode: http.StatusOK,
			want:       Task{ID: 6},
		},
		{
			name:       "validation error",
			request:    CreateTaskRequest{Content: "bad"},
			body:       `{"detail":"invalid"}`,
			statusCode: http.StatusUnprocessableEntity,
			wantErr:    true,
		},
		{
			name:       "null body",
			request:    CreateTaskRequest{Content: "nothing"},
			body:       `null`,
			statusCode: http.StatusOK,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST request, got %s", r.Method)
				}
				if r.URL.Path != "/tasks" {
					t.Errorf("expected path /tasks, got %s", r.URL.Path)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("expected JSON content type, got %q", ct)
				}

				var req map[string]any
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("failed to decode request: %v", err)
				}
				if len(req) != 1 {
					t.Errorf("expected only the task field, got %v", req)
				}
				if req["task"] != tt.request.Content {
					t.Errorf("expected task %q, got %v", tt.request.Content, req["task"])
				}

				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			})
			defer server.Close()

			client := NewClient()
			client.baseURL = server.URL

			task, err := client.CreateTask(tt.request)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateTask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if *task != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, *task)
			}
		})
	}
}

func TestCreateTask_NullBody(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "null")
	})
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	_, err := client.CreateTask(CreateTaskRequest{Content: "x"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGetTasks_NoArray(t *testing.T) {
	for _, body := range []string{"", "null"} {
		t.Run("body "+body, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, body)
			})
			defer server.Close()

			client := NewClient()
			client.baseURL = server.URL

			tasks, err := client.GetTasks()
			if !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("expected ErrEmptyResponse, got %v", err)
			}
			if tasks != nil {
				t.Errorf("expected no tasks, got %+v", tasks)
			}
		})
	}
}
