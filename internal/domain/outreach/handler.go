package outreach

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/webhooks/adt", h.ReceiveADT)
}

func (h *Handler) ReceiveADT(c echo.Context) error {
	var event ADTEvent
	if err := c.Bind(&event); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to process ADT message"})
	}
	result, err := h.svc.Trigger(c.Request().Context(), event)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to process ADT message"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "received",
		"outreach": result,
	})
}
