package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-briefing/internal/api/dto"
	"github.com/spec-kit/staff-briefing/internal/service"
)

// RosterHandler exposes roster import endpoints.
type RosterHandler struct {
	rosters *service.RosterService
}

// NewRosterHandler constructs handler.
func NewRosterHandler(rosters *service.RosterService) *RosterHandler {
	return &RosterHandler{rosters: rosters}
}

// Import handles POST /roster/import with the CSV export as body.
func (h *RosterHandler) Import(c *fiber.Ctx) error {
	result, err := h.rosters.Import(c.UserContext(), string(c.Body()))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": result})
}

// Day handles GET /roster/days/:date.
func (h *RosterHandler) Day(c *fiber.Ctx) error {
	rows, err := h.rosters.DayRecords(c.UserContext(), c.Params("date"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStoredRecordResponses(rows)})
}
