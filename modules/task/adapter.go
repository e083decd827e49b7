package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services. container is the
// ServiceContainer from the task module received via
// SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// CreateTask creates a new task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	return &resp, nil
}

// GetTask retrieves a task by id via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID uint) (*TaskResponse, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-task service call failed: %w", err)
	}
	return &resp, nil
}

// ListTasks lists tasks according to the query via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context, query ListQuery) (*ListTasksResponse, error) {
	req := ListTasksRequest{Query: query}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-tasks", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask replaces a task's fields via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-task service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID uint) (*DeleteTaskResponse, error) {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("delete-task service call failed: %w", err)
	}
	return &resp, nil
}

// MarkComplete stamps a task's completion time via the mark-complete service.
func (a *taskAdapter) MarkComplete(ctx context.Context, taskID uint) (*TaskResponse, error) {
	req := MarkTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "mark-complete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("mark-complete service call failed: %w", err)
	}
	return &resp, nil
}

// MarkIncomplete clears a task's completion time via the mark-incomplete service.
func (a *taskAdapter) MarkIncomplete(ctx context.Context, taskID uint) (*TaskResponse, error) {
	req := MarkTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "mark-incomplete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("mark-incomplete service call failed: %w", err)
	}
	return &resp, nil
}

// AssignGoal associates tasks with a goal via the assign-goal service.
func (a *taskAdapter) AssignGoal(ctx context.Context, req *AssignGoalRequest) (*AssignGoalResponse, error) {
	var resp AssignGoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "assign-goal", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("assign-goal service call failed: %w", err)
	}
	return &resp, nil
}

// ListTasksForGoal lists a goal's tasks via the list-tasks-for-goal service.
func (a *taskAdapter) ListTasksForGoal(ctx context.Context, goalID uint) (*ListTasksResponse, error) {
	req := ListTasksForGoalRequest{GoalID: goalID}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-tasks-for-goal", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks-for-goal service call failed: %w", err)
	}
	return &resp, nil
}
