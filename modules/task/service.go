package task

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/example/tasklist-api/domain/task"
	"github.com/example/tasklist-api/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	newTask := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		CompletedAt: req.CompletedAt,
	}

	if err := m.repo.Create(newTask); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	return toTaskResponse(newTask), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.repo.List(req.Query)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}
	return response, nil
}

// updateTask handles the update-task service request. Title, description and
// completed_at are replaced wholesale; there are no partial-update semantics.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.CompletedAt = req.CompletedAt

	if err := m.repo.Save(task); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	return toTaskResponse(task), nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return DeleteTaskResponse{}, err
	}

	if err := m.repo.Delete(req.TaskID); err != nil {
		return DeleteTaskResponse{}, err
	}

	return DeleteTaskResponse{ID: task.ID, Title: task.Title}, nil
}

// markComplete handles the mark-complete service request. It stamps the
// completion time and emits the task-completed event; event delivery is
// best-effort and never fails the operation.
func (m *TaskModule) markComplete(_ context.Context, req MarkTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	now := time.Now()
	task.CompletedAt = &now

	if err := m.repo.Save(task); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to complete task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskCompletedEvent{
			TaskID:      task.ID,
			Title:       task.Title,
			CompletedAt: now,
		}
		if err := events.TaskCompletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCompleted event for task %d: %v", task.ID, err)
		}
	}

	return toTaskResponse(task), nil
}

// markIncomplete handles the mark-incomplete service request. Clearing an
// already-incomplete task is a no-op, not an error.
func (m *TaskModule) markIncomplete(_ context.Context, req MarkTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	task.CompletedAt = nil

	if err := m.repo.Save(task); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to mark task incomplete: %w", err)
	}

	return toTaskResponse(task), nil
}

// assignGoal handles the assign-goal service request. The assignment is
// all-or-nothing: any missing task id rejects the whole request.
func (m *TaskModule) assignGoal(_ context.Context, req AssignGoalRequest, _ *mono.Msg) (AssignGoalResponse, error) {
	if err := m.repo.AssignGoal(req.GoalID, req.TaskIDs); err != nil {
		return AssignGoalResponse{}, err
	}

	return AssignGoalResponse{GoalID: req.GoalID, TaskIDs: req.TaskIDs}, nil
}

// listTasksForGoal handles the list-tasks-for-goal service request.
func (m *TaskModule) listTasksForGoal(_ context.Context, req ListTasksForGoalRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.repo.FindByGoalID(req.GoalID)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}
	return response, nil
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CompletedAt: task.CompletedAt,
		GoalID:      task.GoalID,
		IsComplete:  task.IsComplete(),
	}
}
