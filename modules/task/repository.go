package task

import (
	"errors"
	"fmt"

	domain "github.com/example/tasklist-api/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("task not found")

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task to the database. The store assigns the id.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its id.
func (r *Repository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// List retrieves tasks according to the query parameters. Conditions are
// mutually exclusive and checked in a fixed order: title sort beats id sort
// beats the title filter; an unrecognized sort value falls through to the
// next condition. No condition means store-default order.
func (r *Repository) List(q ListQuery) ([]*domain.Task, error) {
	db := r.db
	switch {
	case q.Sort == "asc":
		db = db.Order("title asc")
	case q.Sort == "desc":
		db = db.Order("title desc")
	case q.SortByID == "asc":
		db = db.Order("id asc")
	case q.SortByID == "desc":
		db = db.Order("id desc")
	case q.FilterByTitle != "":
		db = db.Where("title = ?", q.FilterByTitle)
	}

	var tasks []*domain.Task
	if err := db.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Save writes all fields of an existing task back to the database. A full
// write is required so that clearing CompletedAt persists as NULL.
func (r *Repository) Save(task *domain.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// Delete removes a task permanently.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&domain.Task{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignGoal sets goal_id on every listed task inside one transaction.
// A missing task id aborts the whole assignment; nothing is partially
// committed.
func (r *Repository) AssignGoal(goalID uint, taskIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range taskIDs {
			var task domain.Task
			if err := tx.First(&task, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("task %d: %w", id, ErrNotFound)
				}
				return fmt.Errorf("failed to find task %d: %w", id, err)
			}
			if err := tx.Model(&task).Update("goal_id", goalID).Error; err != nil {
				return fmt.Errorf("failed to assign task %d: %w", id, err)
			}
		}
		return nil
	})
}

// FindByGoalID retrieves all tasks associated with a goal.
func (r *Repository) FindByGoalID(goalID uint) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.Where("goal_id = ?", goalID).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks for goal: %w", err)
	}
	return tasks, nil
}
