package api

import (
	"github.com/gofiber/fiber/v2"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// TeamHandler serves team and team-membership endpoints.
type TeamHandler struct {
	teamSvc domain.TeamService
}

func NewTeamHandler(teamSvc domain.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// GetTeams lists all teams with their members.
// GET /api/teams
func (h *TeamHandler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.teamSvc.ListTeams(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(teams)
}

// GetTeam fetches one team with its members.
// GET /api/teams/:id
func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team id"})
	}

	team, err := h.teamSvc.GetTeam(c.Context(), uint(id))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(team)
}

// CreateTeam creates a team.
// POST /api/teams
func (h *TeamHandler) CreateTeam(c *fiber.Ctx) error {
	var team model.Team
	if err := c.BodyParser(&team); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if team.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := h.teamSvc.CreateTeam(c.Context(), &team); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// UpdateTeam updates a team.
// PUT /api/teams/:id
func (h *TeamHandler) UpdateTeam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team id"})
	}

	var team model.Team
	if err := c.BodyParser(&team); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if team.ID != 0 && team.ID != uint(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Team id mismatch"})
	}
	team.ID = uint(id)

	if err := h.teamSvc.UpdateTeam(c.Context(), &team); err != nil {
		return handleError(c, err)
	}
	return c.JSON(team)
}

// DeleteTeam deletes a team and its memberships.
// DELETE /api/teams/:id
func (h *TeamHandler) DeleteTeam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team id"})
	}

	if err := h.teamSvc.DeleteTeam(c.Context(), uint(id)); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddMember adds a user to a team.
// POST /api/teams/:teamId/members
func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("teamId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team id"})
	}

	var member model.TeamMember
	if err := c.BodyParser(&member); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.teamSvc.AddMember(c.Context(), uint(teamID), &member); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveMember removes a user from a team.
// DELETE /api/teams/:teamId/members/:userId
func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("teamId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team id"})
	}
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := h.teamSvc.RemoveMember(c.Context(), uint(teamID), uint(userID)); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
