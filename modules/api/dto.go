package api

import (
	"encoding/json"
	"time"
)

// OptionalTime distinguishes an absent completed_at key from an explicit
// JSON null. Present is true whenever the key appeared in the body.
type OptionalTime struct {
	Present bool
	Value   *time.Time
}

// UnmarshalJSON records key presence and accepts null as "no timestamp".
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// TaskBody is the request body shared by task create and full edit. Pointer
// fields make a missing key distinguishable from an empty value.
type TaskBody struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	CompletedAt OptionalTime `json:"completed_at"`
}

// GoalBody is the request body shared by goal create and edit.
type GoalBody struct {
	Title *string `json:"title"`
}

// AssignTasksBody is the request body for associating tasks with a goal.
type AssignTasksBody struct {
	TaskIDs *[]uint `json:"task_ids"`
}

// TaskView is the compact task projection returned by every task-bearing
// endpoint: the completion flag is derived, never the raw timestamp.
type TaskView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

// GoalView is the goal projection returned by every goal-bearing endpoint.
type GoalView struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// taskEnvelope wraps a single task view, matching the {"task": ...} contract.
type taskEnvelope struct {
	Task TaskView `json:"task"`
}

// goalEnvelope wraps a single goal view, matching the {"goal": ...} contract.
type goalEnvelope struct {
	Goal GoalView `json:"goal"`
}

// detailsResponse carries the details message used by validation failures
// and delete confirmations.
type detailsResponse struct {
	Details string `json:"details"`
}

// AssignTasksResponse echoes the association request, not recomputed from
// the store.
type AssignTasksResponse struct {
	ID      uint   `json:"id"`
	TaskIDs []uint `json:"task_ids"`
}

// GoalWithTasksResponse is the goal view merged with its tasks.
type GoalWithTasksResponse struct {
	ID    uint       `json:"id"`
	Title string     `json:"title"`
	Tasks []TaskView `json:"tasks"`
}

// HealthResponse is the HTTP response for the health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for unexpected server errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
