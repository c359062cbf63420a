package handlers

import (
	"net/http"

	"github.com/clinicdash/clinicdash/internal/appointment"
	"github.com/clinicdash/clinicdash/internal/doctor"
	"github.com/clinicdash/clinicdash/internal/uistate"
	"github.com/clinicdash/clinicdash/internal/view"
	"github.com/clinicdash/clinicdash/pkg/logger"
	"github.com/clinicdash/clinicdash/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the home-tab stat cards and the flat tab selector.
// UI state is keyed by the dashboard client id (header, falling back to IP)
// so each operator keeps their own active tab.
type DashboardHandler struct {
	store *doctor.Store
	feed  *appointment.Feed
	ui    uistate.Repository
}

func NewDashboardHandler(store *doctor.Store, feed *appointment.Feed, ui uistate.Repository) *DashboardHandler {
	return &DashboardHandler{store: store, feed: feed, ui: ui}
}

func (h *DashboardHandler) Register(r gin.IRouter) {
	r.GET("/api/dashboard", h.dashboard)
	r.GET("/api/ui/tab", h.tab)
	r.PUT("/api/ui/tab", h.selectTab)
}

// loadState fetches the caller's state, starting fresh on first contact.
func (h *DashboardHandler) loadState(c *gin.Context) (*uistate.State, string, error) {
	clientID := middleware.ClientID(c)
	st, err := h.ui.Get(c.Request.Context(), clientID)
	if err != nil {
		return nil, clientID, err
	}
	if st == nil {
		st = uistate.NewState()
	}
	_, st.LoggedIn = c.Get("operator")
	return st, clientID, nil
}

func (h *DashboardHandler) dashboard(c *gin.Context) {
	st, _, err := h.loadState(c)
	if err != nil {
		writeError(c, err)
		return
	}

	// stat cards tolerate a failed refresh; stale numbers beat no dashboard
	if err := h.store.Refresh(c.Request.Context()); err != nil {
		logger.Warnf("dashboard: doctor refresh failed: %v", err)
	}
	if err := h.feed.Refresh(c.Request.Context()); err != nil {
		logger.Warnf("dashboard: appointment refresh failed: %v", err)
	}

	c.JSON(http.StatusOK, view.Dashboard(st, h.store.Snapshot(), h.feed.Snapshot()))
}

func (h *DashboardHandler) tab(c *gin.Context) {
	st, _, err := h.loadState(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeTab": st.ActiveTab})
}

func (h *DashboardHandler) selectTab(c *gin.Context) {
	var req struct {
		Tab uistate.Tab `json:"tab"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, clientID, err := h.loadState(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := st.Select(req.Tab); err != nil {
		writeError(c, err)
		return
	}
	if err := h.ui.Put(c.Request.Context(), clientID, st); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeTab": st.ActiveTab})
}
