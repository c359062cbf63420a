package handlers

import (
	"errors"
	"net/http"

	"github.com/clinicdash/clinicdash/internal/content"
	"github.com/clinicdash/clinicdash/internal/doctor"
	"github.com/clinicdash/clinicdash/internal/uistate"
	"github.com/gin-gonic/gin"
)

// writeError is the one user-visible error contract: every failure becomes a
// structured JSON body. Network-level transport failures map to 502, server
// rejections carry the upstream status through, client-side mistakes get 4xx.
// Nothing is log-only.
func writeError(c *gin.Context, err error) {
	var te *content.TransportError
	switch {
	case errors.As(err, &te):
		if te.Kind == content.KindNetwork {
			c.JSON(http.StatusBadGateway, gin.H{"error": te.Message})
			return
		}
		status := te.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": te.Message})
	case errors.Is(err, doctor.ErrNoSession):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, doctor.ErrUnknownField), errors.Is(err, uistate.ErrUnknownTab):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
