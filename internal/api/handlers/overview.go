package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opservo/fieldops/internal/overview"
)

// GetSettingsOverview serves the consolidated settings overview. It always
// answers 200 with a full payload; when identity or data is unavailable
// the payload is the degraded all-defaults one.
func (h *Handler) GetSettingsOverview(c *gin.Context) {
	passID := c.GetString("pass_id")
	tenantID := c.GetString("tenant_id")
	userID := c.GetString("user_id")

	var ident *overview.Identity
	if tenantID != "" {
		ident = &overview.Identity{UserID: userID, CompanyID: tenantID}
	}

	payload := h.overview.Overview(c.Request.Context(), ident, passID)

	if h.metrics != nil && tenantID != "" {
		h.metrics.RecordOverviewRequest(tenantID, payload.Meta.CompanyName == "")
	}

	c.JSON(http.StatusOK, payload)
}
