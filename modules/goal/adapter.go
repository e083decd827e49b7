package goal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// goalAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the GoalPort interface.
type goalAdapter struct {
	container mono.ServiceContainer
}

// NewGoalAdapter creates a new adapter for goal services. container is the
// ServiceContainer from the goal module received via
// SetDependencyServiceContainer.
func NewGoalAdapter(container mono.ServiceContainer) GoalPort {
	if container == nil {
		panic("goal adapter requires non-nil ServiceContainer")
	}
	return &goalAdapter{container: container}
}

// CreateGoal creates a new goal via the create-goal service.
func (a *goalAdapter) CreateGoal(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error) {
	var resp GoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-goal", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-goal service call failed: %w", err)
	}
	return &resp, nil
}

// GetGoal retrieves a goal by id via the get-goal service.
func (a *goalAdapter) GetGoal(ctx context.Context, goalID uint) (*GoalResponse, error) {
	req := GetGoalRequest{GoalID: goalID}
	var resp GoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-goal", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-goal service call failed: %w", err)
	}
	return &resp, nil
}

// ListGoals lists goals according to the query via the list-goals service.
func (a *goalAdapter) ListGoals(ctx context.Context, query ListQuery) (*ListGoalsResponse, error) {
	req := ListGoalsRequest{Query: query}
	var resp ListGoalsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-goals", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-goals service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateGoal replaces a goal's title via the update-goal service.
func (a *goalAdapter) UpdateGoal(ctx context.Context, req *UpdateGoalRequest) (*GoalResponse, error) {
	var resp GoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-goal", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-goal service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteGoal deletes a goal via the delete-goal service.
func (a *goalAdapter) DeleteGoal(ctx context.Context, goalID uint) (*DeleteGoalResponse, error) {
	req := DeleteGoalRequest{GoalID: goalID}
	var resp DeleteGoalResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-goal", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("delete-goal service call failed: %w", err)
	}
	return &resp, nil
}
