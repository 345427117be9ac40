package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apcm/apcm/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:patientId", h.GetPatient)
	api.POST("/patients/stratify", h.StratifyPatient)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

// StratifyRequest carries the utilization inputs for risk stratification.
// Absent fields are treated as zero.
type StratifyRequest struct {
	ChronicConditions []string `json:"chronicConditions"`
	RecentAdmissions  int      `json:"recentAdmissions"`
	EDVisits          int      `json:"edVisits"`
}

func (h *Handler) StratifyPatient(c echo.Context) error {
	var req StratifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to stratify patient"})
	}
	level := Stratify(len(req.ChronicConditions), req.RecentAdmissions, req.EDVisits)
	return c.JSON(http.StatusOK, map[string]RiskLevel{"riskLevel": level})
}
