package task

import "time"

// Task is the core domain entity representing a unit of work. CompletedAt is
// the single source of truth for completion state; GoalID is nil while the
// task is not associated with a goal.
type Task struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:500;not null" json:"description"`
	CompletedAt *time.Time `json:"completed_at"`
	GoalID      *uint      `gorm:"index" json:"goal_id,omitempty"`
}

// IsComplete derives the completion flag from CompletedAt. Every view
// projection must go through this method; the flag is never stored.
func (t *Task) IsComplete() bool {
	return t.CompletedAt != nil
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
