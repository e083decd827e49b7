package goal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	domain "github.com/example/tasklist-api/domain/goal"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GoalModule provides goal management services backed by GORM + SQLite.
// It shares the database file with the task module; each module migrates
// and accesses only its own table.
type GoalModule struct {
	db     *gorm.DB
	repo   *Repository
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*GoalModule)(nil)
var _ mono.ServiceProviderModule = (*GoalModule)(nil)
var _ mono.HealthCheckableModule = (*GoalModule)(nil)

// NewModule creates a new GoalModule.
func NewModule() *GoalModule {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "tasklist.db"
	}
	return &GoalModule{dbPath: dbPath}
}

// Name returns the module name.
func (m *GoalModule) Name() string {
	return "goal"
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.goal." on the wire.
func (m *GoalModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-goal", json.Unmarshal, json.Marshal, m.createGoal,
	); err != nil {
		return fmt.Errorf("failed to register create-goal service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-goal", json.Unmarshal, json.Marshal, m.getGoal,
	); err != nil {
		return fmt.Errorf("failed to register get-goal service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-goals", json.Unmarshal, json.Marshal, m.listGoals,
	); err != nil {
		return fmt.Errorf("failed to register list-goals service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-goal", json.Unmarshal, json.Marshal, m.updateGoal,
	); err != nil {
		return fmt.Errorf("failed to register update-goal service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-goal", json.Unmarshal, json.Marshal, m.deleteGoal,
	); err != nil {
		return fmt.Errorf("failed to register delete-goal service: %w", err)
	}

	log.Printf("[goal] Registered services: create-goal, get-goal, list-goals, update-goal, delete-goal")
	return nil
}

// Start opens the database connection and runs migrations.
func (m *GoalModule) Start(_ context.Context) error {
	log.Printf("[goal] Connecting to SQLite database: %s", m.dbPath)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m.db = db

	if err := m.db.AutoMigrate(&domain.Goal{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.repo = NewRepository(m.db)

	log.Println("[goal] Module started successfully")
	return nil
}

// Stop closes the database connection.
func (m *GoalModule) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	log.Println("[goal] Closing database connection...")

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[goal] Database connection closed")
	return nil
}

// Health performs a health check on the goal module.
func (m *GoalModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.dbPath,
		},
	}
}
