package reporting

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const markdownMIME = "text/markdown; charset=utf-8"

var validChannels = map[Channel]bool{
	ChannelSMS:   true,
	ChannelEmail: true,
	ChannelCall:  true,
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reporting/:patientId", h.GetReport)
	api.GET("/communications/:patientId", h.ListCommunications)
	api.POST("/communications/:patientId", h.LogCommunication)
}

// GetReport always renders a document, even for a patient with nothing on file.
func (h *Handler) GetReport(c echo.Context) error {
	report, err := h.svc.Generate(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to generate report")
	}
	return c.Blob(http.StatusOK, markdownMIME, []byte(report))
}

func (h *Handler) ListCommunications(c echo.Context) error {
	entries, err := h.svc.Communications(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  entries,
		"total": len(entries),
	})
}

func (h *Handler) LogCommunication(c echo.Context) error {
	var entry CommunicationEntry
	if err := c.Bind(&entry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unable to log communication"})
	}
	if !validChannels[entry.Channel] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid channel: must be sms, email, or call"})
	}
	if entry.Note == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "note is required"})
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	if err := h.svc.LogCommunication(c.Request().Context(), c.Param("patientId"), entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, entry)
}
