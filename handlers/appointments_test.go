package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clinicdash/clinicdash/internal/appointment"
)

func TestAppointmentRoutes_List(t *testing.T) {
	remote, g := newTestRouter(t)
	remote.appointments = []appointment.Record{
		{ID: 1, Attributes: appointment.Attributes{
			Date: "2024-05-01", UserName: "Pat", Email: "pat@example.com",
			Time: "10:30", Note: "follow-up",
		}},
		{ID: 2, Attributes: appointment.Attributes{Date: "soon", UserName: "Sam"}},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `"stale":false`)
	require.Contains(t, body, "May 1, 2024")
	require.Contains(t, body, "Pat")
	require.Contains(t, body, "follow-up")
	// unparsable date passes through as-is
	require.Contains(t, body, `"date":"soon"`)
}

func TestAppointmentRoutes_EmptyFeed(t *testing.T) {
	_, g := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"appointments":[]`)
}
