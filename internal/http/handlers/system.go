package handlers

import (
	"net/http"

	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h Handler) Health(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"status": "ok", "time": utils.NowUTC()})
}

func (h Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database not connected")
		return
	}
	if err := h.DB.PingContext(c.Request.Context()); err != nil {
		utils.LogError(c.Request.Context(), "system", "db_check", err)
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database ping failed")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"status": "ok"})
}
