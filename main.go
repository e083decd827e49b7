package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/tasklist-api/modules/api"
	"github.com/example/tasklist-api/modules/goal"
	"github.com/example/tasklist-api/modules/notification"
	"github.com/example/tasklist-api/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task List Service ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies.
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(goal.NewModule())         // Core domain: goals
	app.Register(task.NewModule())         // Core domain: tasks (emits completion events)
	app.Register(api.NewModule())          // Driving adapter (depends on task, goal)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /tasks                     - Create a task")
	log.Println("  GET    /tasks                     - List tasks (sort, sort_by_id, filter_by_title)")
	log.Println("  GET    /tasks/:id                 - Get a task by id")
	log.Println("  PUT    /tasks/:id                 - Edit a task (full replace)")
	log.Println("  DELETE /tasks/:id                 - Delete a task")
	log.Println("  PATCH  /tasks/:id/mark_complete   - Mark a task complete")
	log.Println("  PATCH  /tasks/:id/mark_incomplete - Mark a task incomplete")
	log.Println("  POST   /goals                     - Create a goal")
	log.Println("  GET    /goals                     - List goals (same query parameters)")
	log.Println("  GET    /goals/:id                 - Get a goal by id")
	log.Println("  PUT    /goals/:id                 - Edit a goal")
	log.Println("  DELETE /goals/:id                 - Delete a goal")
	log.Println("  POST   /goals/:id/tasks           - Associate tasks with a goal")
	log.Println("  GET    /goals/:id/tasks           - Get a goal with its tasks")
	log.Println("  GET    /health                    - Health check")
	log.Println("")
	log.Println("Completion notices are posted to the configured Slack channel (SLACK_API_KEY).")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
