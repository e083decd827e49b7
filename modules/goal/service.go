package goal

import (
	"context"
	"fmt"

	domain "github.com/example/tasklist-api/domain/goal"
	"github.com/go-monolith/mono"
)

// createGoal handles the create-goal service request.
func (m *GoalModule) createGoal(_ context.Context, req CreateGoalRequest, _ *mono.Msg) (GoalResponse, error) {
	newGoal := &domain.Goal{Title: req.Title}

	if err := m.repo.Create(newGoal); err != nil {
		return GoalResponse{}, fmt.Errorf("failed to save goal: %w", err)
	}

	return toGoalResponse(newGoal), nil
}

// getGoal handles the get-goal service request.
func (m *GoalModule) getGoal(_ context.Context, req GetGoalRequest, _ *mono.Msg) (GoalResponse, error) {
	goal, err := m.repo.FindByID(req.GoalID)
	if err != nil {
		return GoalResponse{}, err
	}
	return toGoalResponse(goal), nil
}

// listGoals handles the list-goals service request.
func (m *GoalModule) listGoals(_ context.Context, req ListGoalsRequest, _ *mono.Msg) (ListGoalsResponse, error) {
	goals, err := m.repo.List(req.Query)
	if err != nil {
		return ListGoalsResponse{}, err
	}

	response := ListGoalsResponse{
		Goals: make([]GoalResponse, 0, len(goals)),
	}
	for _, goal := range goals {
		response.Goals = append(response.Goals, toGoalResponse(goal))
	}
	return response, nil
}

// updateGoal handles the update-goal service request.
func (m *GoalModule) updateGoal(_ context.Context, req UpdateGoalRequest, _ *mono.Msg) (GoalResponse, error) {
	goal, err := m.repo.FindByID(req.GoalID)
	if err != nil {
		return GoalResponse{}, err
	}

	goal.Title = req.Title

	if err := m.repo.Save(goal); err != nil {
		return GoalResponse{}, fmt.Errorf("failed to update goal: %w", err)
	}

	return toGoalResponse(goal), nil
}

// deleteGoal handles the delete-goal service request. Deletion does not
// cascade to associated tasks.
func (m *GoalModule) deleteGoal(_ context.Context, req DeleteGoalRequest, _ *mono.Msg) (DeleteGoalResponse, error) {
	goal, err := m.repo.FindByID(req.GoalID)
	if err != nil {
		return DeleteGoalResponse{}, err
	}

	if err := m.repo.Delete(req.GoalID); err != nil {
		return DeleteGoalResponse{}, err
	}

	return DeleteGoalResponse{ID: goal.ID, Title: goal.Title}, nil
}

// toGoalResponse converts a domain Goal to a GoalResponse.
func toGoalResponse(goal *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:    goal.ID,
		Title: goal.Title,
	}
}
