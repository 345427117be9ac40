package careplan

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
	api.GET("/care-plans/:patientId", h.GetCarePlan)
	api.POST("/care-plans/:patientId", h.CreateCarePlan)
	api.PUT("/care-plans/:patientId", h.UpdateCarePlan)
}

func (h *Handler) GetCarePlan(c echo.Context) error {
	plan, err := h.svc.Get(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Care plan not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"carePlan": plan})
}

func (h *Handler) CreateCarePlan(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to create care plan"})
	}
	plan, err := h.svc.Create(c.Request().Context(), c.Param("patientId"), req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to create care plan"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"carePlan": plan})
}

func (h *Handler) UpdateCarePlan(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to update care plan"})
	}
	plan, err := h.svc.Update(c.Request().Context(), c.Param("patientId"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Care plan not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to update care plan"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"carePlan": plan})
}
