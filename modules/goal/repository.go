package goal

import (
	"errors"
	"fmt"

	domain "github.com/example/tasklist-api/domain/goal"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a goal is not found.
var ErrNotFound = errors.New("goal not found")

// Repository provides access to goal storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new goal repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new goal to the database. The store assigns the id.
func (r *Repository) Create(goal *domain.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// FindByID retrieves a goal by its id.
func (r *Repository) FindByID(id uint) (*domain.Goal, error) {
	var goal domain.Goal
	if err := r.db.First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return &goal, nil
}

// List retrieves goals with the same condition precedence as task listing:
// title sort beats id sort beats the title filter, first match wins.
func (r *Repository) List(q ListQuery) ([]*domain.Goal, error) {
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

	var goals []*domain.Goal
	if err := db.Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// Save writes all fields of an existing goal back to the database.
func (r *Repository) Save(goal *domain.Goal) error {
	if err := r.db.Save(goal).Error; err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// Delete removes a goal permanently. Associated tasks are left untouched;
// their goal_id keeps pointing at the deleted goal.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&domain.Goal{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
