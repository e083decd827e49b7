package task

import (
	"context"
	"time"
)

// CreateTaskRequest is the request for creating a task. CompletedAt may be
// nil; the task is then created incomplete.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CompletedAt *time.Time `json:"completed_at"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// ListQuery carries the sort/filter query parameters. At most one of them
// takes effect; see Repository.List for the precedence rule.
type ListQuery struct {
	Sort          string `json:"sort,omitempty"`
	SortByID      string `json:"sort_by_id,omitempty"`
	FilterByTitle string `json:"filter_by_title,omitempty"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct {
	Query ListQuery `json:"query"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// UpdateTaskRequest is the request for a full edit of a task. Title,
// Description and CompletedAt replace the stored values wholesale.
type UpdateTaskRequest struct {
	TaskID      uint       `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CompletedAt *time.Time `json:"completed_at"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// DeleteTaskResponse echoes the deleted task's identity so callers can
// report what was removed.
type DeleteTaskResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// MarkTaskRequest is the request for the completion-toggle services.
type MarkTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// AssignGoalRequest associates every listed task with the goal.
type AssignGoalRequest struct {
	GoalID  uint   `json:"goal_id"`
	TaskIDs []uint `json:"task_ids"`
}

// AssignGoalResponse echoes the association that was made.
type AssignGoalResponse struct {
	GoalID  uint   `json:"goal_id"`
	TaskIDs []uint `json:"task_ids"`
}

// ListTasksForGoalRequest is the request for listing a goal's tasks.
type ListTasksForGoalRequest struct {
	GoalID uint `json:"goal_id"`
}

// TaskResponse is the response for a single task. IsComplete is derived from
// CompletedAt by the domain entity, never stored.
type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	GoalID      *uint      `json:"goal_id,omitempty"`
	IsComplete  bool       `json:"is_complete"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract that driving adapters (like the HTTP API) use to
// interact with the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID uint) (*TaskResponse, error)
	ListTasks(ctx context.Context, query ListQuery) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID uint) (*DeleteTaskResponse, error)
	MarkComplete(ctx context.Context, taskID uint) (*TaskResponse, error)
	MarkIncomplete(ctx context.Context, taskID uint) (*TaskResponse, error)
	AssignGoal(ctx context.Context, req *AssignGoalRequest) (*AssignGoalResponse, error)
	ListTasksForGoal(ctx context.Context, goalID uint) (*ListTasksResponse, error)
}
