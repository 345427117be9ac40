package ai

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	gen Generator
}

// NewHandler wraps a Generator. gen may be nil when drafting is not
// configured; requests then get a 503 instead of a panic.
func NewHandler(gen Generator) *Handler {
	return &Handler{gen: gen}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/ai-care-plan", h.Draft)
}

type draftRequest struct {
	Form map[string]interface{} `json:"form"`
}

func (h *Handler) Draft(c echo.Context) error {
	if h.gen == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "OPENAI_API_KEY not set"})
	}

	var req draftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to generate care plan"})
	}

	plan, err := h.gen.GenerateCarePlan(c.Request().Context(), req.Form)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "OPENAI_API_KEY not set"})
		}
		log.Error().Err(err).Msg("AI care plan generation failed")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Unable to generate care plan"})
	}

	return c.JSON(http.StatusOK, map[string]string{"plan": plan})
}
