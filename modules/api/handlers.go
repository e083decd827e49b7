package api

import (
	"fmt"

	"github.com/example/tasklist-api/modules/goal"
	"github.com/example/tasklist-api/modules/task"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes. Paths carry no version prefix;
// they are a compatibility contract.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	tasks := m.app.Group("/tasks")
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Put("/:id", m.editTask)
	tasks.Delete("/:id", m.deleteTask)
	tasks.Patch("/:id/mark_complete", m.markTaskComplete)
	tasks.Patch("/:id/mark_incomplete", m.markTaskIncomplete)

	goals := m.app.Group("/goals")
	goals.Post("/", m.createGoal)
	goals.Get("/", m.listGoals)
	goals.Get("/:id", m.getGoal)
	goals.Put("/:id", m.editGoal)
	goals.Delete("/:id", m.deleteGoal)
	goals.Post("/:id/tasks", m.assignTasksToGoal)
	goals.Get("/:id/tasks", m.getTasksForGoal)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
		},
	})
}

// invalidData returns the 400 contract body for missing required fields.
func invalidData(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(detailsResponse{Details: "Invalid data"})
}

// notFound returns 404 with an empty body, per the compatibility contract.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("")
}

// paramID parses the :id path parameter. A non-numeric or non-positive id
// behaves like an unknown id.
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// listQueryFromCtx extracts the shared sort/filter query parameters.
func listQueryFromCtx(c *fiber.Ctx) (sort, sortByID, filterByTitle string) {
	return c.Query("sort"), c.Query("sort_by_id"), c.Query("filter_by_title")
}

// createTask handles POST /tasks. All three keys must be present in the
// body; completed_at may be explicitly null.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return invalidData(c)
	}
	if body.Title == nil || body.Description == nil || !body.CompletedAt.Present {
		return invalidData(c)
	}

	resp, err := m.taskPort.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       *body.Title,
		Description: *body.Description,
		CompletedAt: body.CompletedAt.Value,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(taskEnvelope{Task: toTaskView(resp)})
}

// listTasks handles GET /tasks. The response is a bare JSON array.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	sort, sortByID, filterByTitle := listQueryFromCtx(c)

	resp, err := m.taskPort.ListTasks(c.Context(), task.ListQuery{
		Sort:          sort,
		SortByID:      sortByID,
		FilterByTitle: filterByTitle,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: "Failed to list tasks",
		})
	}

	views := make([]TaskView, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		views = append(views, toTaskView(&t))
	}
	return c.JSON(views)
}

// getTask handles GET /tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	resp, err := m.taskPort.GetTask(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(taskEnvelope{Task: toTaskView(resp)})
}

// editTask handles PUT /tasks/:id, a full replace of title, description and
// completed_at. Existence is checked before the body is validated so an
// unknown id yields 404 regardless of body shape.
func (m *APIModule) editTask(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	if _, err := m.taskPort.GetTask(c.Context(), id); err != nil {
		return notFound(c)
	}

	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return invalidData(c)
	}
	if body.Title == nil || body.Description == nil || !body.CompletedAt.Present {
		return invalidData(c)
	}

	resp, err := m.taskPort.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:      id,
		Title:       *body.Title,
		Description: *body.Description,
		CompletedAt: body.CompletedAt.Value,
	})
	if err != nil {
		return notFound(c)
	}

	return c.JSON(taskEnvelope{Task: toTaskView(resp)})
}

// deleteTask handles DELETE /tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	resp, err := m.taskPort.DeleteTask(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	// The title is interpolated raw, not Go-quoted, so titles containing
	// double quotes keep them unescaped in the message.
	return c.JSON(detailsResponse{
		Details: fmt.Sprintf("Task %d \"%s\" successfully deleted", resp.ID, resp.Title),
	})
}

// markTaskComplete handles PATCH /tasks/:id/mark_complete. The completion
// notification is delivered by the notification module via the event bus;
// its failure never affects this response.
func (m *APIModule) markTaskComplete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	resp, err := m.taskPort.MarkComplete(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(taskEnvelope{Task: toTaskView(resp)})
}

// markTaskIncomplete handles PATCH /tasks/:id/mark_incomplete. Marking an
// already-incomplete task succeeds and stays incomplete.
func (m *APIModule) markTaskIncomplete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	resp, err := m.taskPort.MarkIncomplete(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(taskEnvelope{Task: toTaskView(resp)})
}

// createGoal handles POST /goals.
func (m *APIModule) createGoal(c *fiber.Ctx) error {
	var body GoalBody
	if err := c.BodyParser(&body); err != nil {
		return invalidData(c)
	}
	if body.Title == nil {
		return invalidData(c)
	}

	resp, err := m.goalPort.CreateGoal(c.Context(), &goal.CreateGoalRequest{Title: *body.Title})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: "Failed to create goal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(goalEnvelope{Goal: toGoalView(resp)})
}

// listGoals handles GET /goals with the same query parameters as task listing.
func (m *APIModule) listGoals(c *fiber.Ctx) error {
	sort, sortByID, filterByTitle := listQueryFromCtx(c)

	resp, err := m.goalPort.ListGoals(c.Context(), goal.ListQuery{
		Sort:          sort,
		SortByID:      sortByID,
		FilterByTitle: filterByTitle,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: "Failed to list goals",
		})
	}

	views := make([]GoalView, 0, len(resp.Goals))
	for _, g := range resp.Goals {
		views = append(views, GoalView{ID: g.ID, Title: g.Title})
	}
	return c.JSON(views)
}

// getGoal handles GET /goals/:id.
func (m *APIModule) getGoal(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	resp, err := m.goalPort.GetGoal(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(goalEnvelope{Goal: toGoalView(resp)})
}

// editGoal handles PUT /goals/:id. Existence first, then body validation.
func (m *APIModule) editGoal(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	if _, err := m.goalPort.GetGoal(c.Context(), id); err != nil {
		return notFound(c)
	}

	var body GoalBody
	if err := c.BodyParser(&body); err != nil {
		return invalidData(c)
	}
	if body.Title == nil {
		return invalidData(c)
	}

	resp, err := m.goalPort.UpdateGoal(c.Context(), &goal.UpdateGoalRequest{
		GoalID: id,
		Title:  *body.Title,
	})
	if err != nil {
		return notFound(c)
	}

	return c.JSON(goalEnvelope{Goal: toGoalView(resp)})
}

// deleteGoal handles DELETE /goals/:id. Associated tasks keep their goal_id.
func (m *APIModule) deleteGoal(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	resp, err := m.goalPort.DeleteGoal(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(detailsResponse{
		Details: fmt.Sprintf("Goal %d \"%s\" successfully deleted", resp.ID, resp.Title),
	})
}

// assignTasksToGoal handles POST /goals/:id/tasks. The goal must exist; the
// assignment is all-or-nothing, so any unknown task id rejects the whole
// request. The response echoes the request ids.
func (m *APIModule) assignTasksToGoal(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	if _, err := m.goalPort.GetGoal(c.Context(), id); err != nil {
		return notFound(c)
	}

	var body AssignTasksBody
	if err := c.BodyParser(&body); err != nil {
		return invalidData(c)
	}
	if body.TaskIDs == nil {
		return invalidData(c)
	}

	resp, err := m.taskPort.AssignGoal(c.Context(), &task.AssignGoalRequest{
		GoalID:  id,
		TaskIDs: *body.TaskIDs,
	})
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(detailsResponse{Details: "Invalid task id(s)"})
	}

	return c.JSON(AssignTasksResponse{ID: resp.GoalID, TaskIDs: resp.TaskIDs})
}

// getTasksForGoal handles GET /goals/:id/tasks: the goal view merged with
// all tasks whose goal_id matches.
func (m *APIModule) getTasksForGoal(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}

	goalResp, err := m.goalPort.GetGoal(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	tasksResp, err := m.taskPort.ListTasksForGoal(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: "Failed to list tasks for goal",
		})
	}

	views := make([]TaskView, 0, len(tasksResp.Tasks))
	for _, t := range tasksResp.Tasks {
		views = append(views, toTaskView(&t))
	}

	return c.JSON(GoalWithTasksResponse{
		ID:    goalResp.ID,
		Title: goalResp.Title,
		Tasks: views,
	})
}

// toTaskView projects a task response into the compact view. The completion
// flag comes from the domain derivation carried in the response.
func toTaskView(t *task.TaskResponse) TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsComplete:  t.IsComplete,
	}
}

// toGoalView projects a goal response into the goal view.
func toGoalView(g *goal.GoalResponse) GoalView {
	return GoalView{ID: g.ID, Title: g.Title}
}
