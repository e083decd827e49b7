package goal

import "context"

// CreateGoalRequest is the request for creating a goal.
type CreateGoalRequest struct {
	Title string `json:"title"`
}

// GetGoalRequest is the request for getting a goal.
type GetGoalRequest struct {
	GoalID uint `json:"goal_id"`
}

// ListQuery carries the sort/filter query parameters, with the same
// precedence rule as task listing.
type ListQuery struct {
	Sort          string `json:"sort,omitempty"`
	SortByID      string `json:"sort_by_id,omitempty"`
	FilterByTitle string `json:"filter_by_title,omitempty"`
}

// ListGoalsRequest is the request for listing goals.
type ListGoalsRequest struct {
	Query ListQuery `json:"query"`
}

// ListGoalsResponse is the response for listing goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// UpdateGoalRequest is the request for editing a goal's title.
type UpdateGoalRequest struct {
	GoalID uint   `json:"goal_id"`
	Title  string `json:"title"`
}

// DeleteGoalRequest is the request for deleting a goal.
type DeleteGoalRequest struct {
	GoalID uint `json:"goal_id"`
}

// DeleteGoalResponse echoes the deleted goal's identity so callers can
// report what was removed.
type DeleteGoalResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// GoalResponse is the response for a single goal.
type GoalResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// GoalPort defines the interface for goal operations (hexagonal port).
type GoalPort interface {
	CreateGoal(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error)
	GetGoal(ctx context.Context, goalID uint) (*GoalResponse, error)
	ListGoals(ctx context.Context, query ListQuery) (*ListGoalsResponse, error)
	UpdateGoal(ctx context.Context, req *UpdateGoalRequest) (*GoalResponse, error)
	DeleteGoal(ctx context.Context, goalID uint) (*DeleteGoalResponse, error)
}
