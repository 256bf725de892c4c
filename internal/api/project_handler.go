package api

import (
	"github.com/gofiber/fiber/v2"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// ProjectHandler serves project, project-membership and stats endpoints.
type ProjectHandler struct {
	projectSvc domain.ProjectService
}

func NewProjectHandler(projectSvc domain.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// GetProjects lists all projects with their members.
// GET /api/projects
func (h *ProjectHandler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.projectSvc.ListProjects(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(projects)
}

// GetProject fetches one project.
// GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	project, err := h.projectSvc.GetProject(c.Context(), uint(id))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(project)
}

// CreateProject creates a project.
// POST /api/projects
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var project model.Project
	if err := c.BodyParser(&project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if project.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := h.projectSvc.CreateProject(c.Context(), &project); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject updates a project.
// PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	var project model.Project
	if err := c.BodyParser(&project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if project.ID != 0 && project.ID != uint(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project id mismatch"})
	}
	project.ID = uint(id)

	if err := h.projectSvc.UpdateProject(c.Context(), &project); err != nil {
		return handleError(c, err)
	}
	return c.JSON(project)
}

// DeleteProject deletes a project and its memberships.
// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	if err := h.projectSvc.DeleteProject(c.Context(), uint(id)); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetStats returns task counts for one project.
// GET /api/projects/:id/stats
func (h *ProjectHandler) GetStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	stats, err := h.projectSvc.GetStats(c.Context(), uint(id))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stats)
}

// AddMember adds a user to a project.
// POST /api/projects/:projectId/members
func (h *ProjectHandler) AddMember(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	var req struct {
		UserID uint `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	if err := h.projectSvc.AddMember(c.Context(), uint(projectID), req.UserID); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveMember removes a user from a project.
// DELETE /api/projects/:projectId/members/:userId
func (h *ProjectHandler) RemoveMember(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("projectId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := h.projectSvc.RemoveMember(c.Context(), uint(projectID), uint(userID)); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
