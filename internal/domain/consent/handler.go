package consent

import (
	"errors"
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
	api.GET("/consent/:patientId", h.GetConsent)
	api.POST("/consent/:patientId", h.RecordConsent)
}

// GetConsent reports consent status. A patient with no record gets a 200 with
// consentStatus false, not a 404.
func (h *Handler) GetConsent(c echo.Context) error {
	record, err := h.svc.Get(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusOK, map[string]interface{}{"consentStatus": false})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"consentStatus": true,
		"consent":       record,
	})
}

type recordRequest struct {
	Method Method `json:"method"`
}

func (h *Handler) RecordConsent(c echo.Context) error {
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to create consent record"})
	}
	record, err := h.svc.Record(c.Request().Context(), c.Param("patientId"), req.Method)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to create consent record"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"consent": record})
}
