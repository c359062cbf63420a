package handlers

import (
	"net/http"

	"github.com/clinicdash/clinicdash/internal/appointment"
	"github.com/clinicdash/clinicdash/internal/view"
	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the read-only appointments tab.
type AppointmentHandler struct {
	feed *appointment.Feed
}

func NewAppointmentHandler(feed *appointment.Feed) *AppointmentHandler {
	return &AppointmentHandler{feed: feed}
}

func (h *AppointmentHandler) Register(r gin.IRouter) {
	r.GET("/api/appointments", h.list)
}

func (h *AppointmentHandler) list(c *gin.Context) {
	refreshErr := h.feed.Refresh(c.Request.Context())
	snapshot := h.feed.Snapshot()
	if refreshErr != nil && len(snapshot) == 0 {
		writeError(c, refreshErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": view.Appointments(snapshot),
		"stale":        refreshErr != nil,
	})
}
