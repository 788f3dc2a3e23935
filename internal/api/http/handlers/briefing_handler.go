package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-briefing/internal/api/dto"
	"github.com/spec-kit/staff-briefing/internal/service"
	apperrors "github.com/spec-kit/staff-briefing/pkg/util/errorutil"
)

// BriefingHandler exposes dates, assignments and briefings.
type BriefingHandler struct {
	briefings *service.BriefingService
}

// NewBriefingHandler constructs handler.
func NewBriefingHandler(briefings *service.BriefingService) *BriefingHandler {
	return &BriefingHandler{briefings: briefings}
}

// Dates handles GET /roster/dates.
func (h *BriefingHandler) Dates(c *fiber.Ctx) error {
	dates, err := h.briefings.Dates(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DatesResponse{Dates: dates}})
}

// Assignments handles GET /assignments/:date.
func (h *BriefingHandler) Assignments(c *fiber.Ctx) error {
	result, err := h.briefings.Assignments(c.UserContext(), c.Params("date"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}

// Briefing handles GET /briefings/:date. The default is plain text;
// ?format=json returns the structured document.
func (h *BriefingHandler) Briefing(c *fiber.Ctx) error {
	date := c.Params("date")
	switch c.Query("format", "text") {
	case "text":
		text, err := h.briefings.RenderBriefing(c.UserContext(), date)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(text)
	case "json":
		b, err := h.briefings.Briefing(c.UserContext(), date)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.BriefingResponse{Briefing: b}})
	default:
		return apperrors.NewValidationError("unsupported format", map[string]any{"format": c.Query("format")})
	}
}
