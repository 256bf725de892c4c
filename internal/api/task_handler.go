package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// TaskHandler serves task CRUD endpoints.
type TaskHandler struct {
	taskSvc domain.TaskService
}

func NewTaskHandler(taskSvc domain.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// GetTasks lists tasks with pagination and an optional status filter.
// GET /api/tasks?page=1&pageSize=20&status=ToDo
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))
	status := c.Query("status")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	tasks, total, err := h.taskSvc.ListTasks(c.Context(), status, page, pageSize)
	if err != nil {
		return handleError(c, err)
	}

	return SendPaginatedResponse(c, tasks, page, pageSize, total)
}

// GetTask fetches one task.
// GET /api/tasks/:id
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	task, err := h.taskSvc.GetTask(c.Context(), uint(id))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(task)
}

// GetTasksByStatus lists all tasks in one status.
// GET /api/tasks/by-status/:status
func (h *TaskHandler) GetTasksByStatus(c *fiber.Ctx) error {
	status := c.Params("status")

	tasks, _, err := h.taskSvc.ListTasks(c.Context(), status, 1, 100)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(tasks)
}

// CreateTask creates a task.
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var task model.Task
	if err := c.BodyParser(&task); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if task.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	if err := h.taskSvc.CreateTask(c.Context(), &task); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask updates a task. The path id must match the body id.
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	var task model.Task
	if err := c.BodyParser(&task); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if task.ID != 0 && task.ID != uint(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Task id mismatch"})
	}
	task.ID = uint(id)

	if err := h.taskSvc.UpdateTask(c.Context(), &task); err != nil {
		return handleError(c, err)
	}

	return c.JSON(task)
}

// DeleteTask deletes a task.
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task id"})
	}

	if err := h.taskSvc.DeleteTask(c.Context(), uint(id)); err != nil {
		return handleError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
