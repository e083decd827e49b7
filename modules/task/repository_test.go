package task

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/tasklist-api/domain/task"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestTask(t *testing.T, db *gorm.DB, title, description string, completedAt *time.Time) *domain.Task {
	t.Helper()

	task := &domain.Task{
		Title:       title,
		Description: description,
		CompletedAt: completedAt,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := &domain.Task{
		Title:       "Water the plants",
		Description: "Front porch only",
	}

	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if task.ID == 0 {
		t.Error("expected store-assigned id, got 0")
	}
	if task.IsComplete() {
		t.Error("expected new task without completed_at to be incomplete")
	}

	var found domain.Task
	if err := db.First(&found, task.ID).Error; err != nil {
		t.Fatalf("failed to find created task: %v", err)
	}
	if found.Title != task.Title {
		t.Errorf("expected title %q, got %q", task.Title, found.Title)
	}
	if found.CompletedAt != nil {
		t.Errorf("expected nil completed_at, got %v", found.CompletedAt)
	}
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := createTestTask(t, db, "Read a book", "Any book", nil)

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.FindByID(task.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.ID != task.ID {
			t.Errorf("expected id %d, got %d", task.ID, found.ID)
		}
		if found.Title != task.Title {
			t.Errorf("expected title %q, got %q", task.Title, found.Title)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := repo.FindByID(99999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_List_Precedence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	// Insertion order deliberately differs from both title and id order.
	createTestTask(t, db, "Banana", "b", nil)  // id 1
	createTestTask(t, db, "Apricot", "a", nil) // id 2
	createTestTask(t, db, "Cherry", "c", nil)  // id 3

	tests := []struct {
		name       string
		query      ListQuery
		wantTitles []string
	}{
		{
			name:       "no parameters keeps store order",
			query:      ListQuery{},
			wantTitles: []string{"Banana", "Apricot", "Cherry"},
		},
		{
			name:       "sort asc orders by title",
			query:      ListQuery{Sort: "asc"},
			wantTitles: []string{"Apricot", "Banana", "Cherry"},
		},
		{
			name:       "sort desc orders by title descending",
			query:      ListQuery{Sort: "desc"},
			wantTitles: []string{"Cherry", "Banana", "Apricot"},
		},
		{
			name:       "sort_by_id asc orders by id",
			query:      ListQuery{SortByID: "asc"},
			wantTitles: []string{"Banana", "Apricot", "Cherry"},
		},
		{
			name:       "sort_by_id desc orders by id descending",
			query:      ListQuery{SortByID: "desc"},
			wantTitles: []string{"Cherry", "Apricot", "Banana"},
		},
		{
			name:       "title sort wins over id sort",
			query:      ListQuery{Sort: "asc", SortByID: "desc"},
			wantTitles: []string{"Apricot", "Banana", "Cherry"},
		},
		{
			name:       "id sort wins over filter",
			query:      ListQuery{SortByID: "desc", FilterByTitle: "Banana"},
			wantTitles: []string{"Cherry", "Apricot", "Banana"},
		},
		{
			name:       "unrecognized sort value falls through to id sort",
			query:      ListQuery{Sort: "sideways", SortByID: "desc"},
			wantTitles: []string{"Cherry", "Apricot", "Banana"},
		},
		{
			name:       "filter matches exact title only",
			query:      ListQuery{FilterByTitle: "Banana"},
			wantTitles: []string{"Banana"},
		},
		{
			name:       "filter is not a substring match",
			query:      ListQuery{FilterByTitle: "Ban"},
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := repo.List(tt.query)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(tasks) != len(tt.wantTitles) {
				t.Fatalf("expected %d tasks, got %d", len(tt.wantTitles), len(tasks))
			}
			for i, want := range tt.wantTitles {
				if tasks[i].Title != want {
					t.Errorf("position %d: expected %q, got %q", i, want, tasks[i].Title)
				}
			}
		})
	}
}

func TestRepository_Save_ClearsCompletedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	now := time.Now()
	task := createTestTask(t, db, "Stretch", "Morning routine", &now)

	task.CompletedAt = nil
	if err := repo.Save(task); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	found, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.CompletedAt != nil {
		t.Errorf("expected completed_at cleared to NULL, got %v", found.CompletedAt)
	}
	if found.IsComplete() {
		t.Error("expected task to be incomplete after clearing completed_at")
	}
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := createTestTask(t, db, "Take out trash", "Tuesday night", nil)

	t.Run("existing task", func(t *testing.T) {
		if err := repo.Delete(task.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := repo.FindByID(task.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		if err := repo.Delete(99999); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_AssignGoal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	first := createTestTask(t, db, "Run", "5k", nil)
	second := createTestTask(t, db, "Swim", "20 laps", nil)

	t.Run("assigns every listed task", func(t *testing.T) {
		if err := repo.AssignGoal(7, []uint{first.ID, second.ID}); err != nil {
			t.Fatalf("AssignGoal() error = %v", err)
		}

		for _, id := range []uint{first.ID, second.ID} {
			found, err := repo.FindByID(id)
			if err != nil {
				t.Fatalf("FindByID() error = %v", err)
			}
			if found.GoalID == nil || *found.GoalID != 7 {
				t.Errorf("task %d: expected goal_id 7, got %v", id, found.GoalID)
			}
		}
	})

	t.Run("missing task id rolls back the whole assignment", func(t *testing.T) {
		err := repo.AssignGoal(8, []uint{first.ID, 99999})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		// The first task must keep its previous association.
		found, err := repo.FindByID(first.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.GoalID == nil || *found.GoalID != 7 {
			t.Errorf("expected goal_id unchanged at 7, got %v", found.GoalID)
		}
	})
}

func TestRepository_FindByGoalID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	goalID := uint(3)
	inGoal := createTestTask(t, db, "Plan trip", "Book flights", nil)
	createTestTask(t, db, "Unrelated", "No goal", nil)

	if err := db.Model(inGoal).Update("goal_id", goalID).Error; err != nil {
		t.Fatalf("failed to associate test task: %v", err)
	}

	tasks, err := repo.FindByGoalID(goalID)
	if err != nil {
		t.Fatalf("FindByGoalID() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != inGoal.ID {
		t.Errorf("expected task %d, got %d", inGoal.ID, tasks[0].ID)
	}
}
