package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckSendingDomain runs live DNS and WHOIS diagnostics against the
// tenant's configured email sending domain.
func (h *Handler) CheckSendingDomain(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active company"})
		return
	}

	settings, err := h.repo.GetEmailSettings(c.Request.Context(), tenantID)
	if err != nil {
		h.logger.Error("failed to load email settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load email settings"})
		return
	}

	if settings == nil || settings.SenderDomain == nil || *settings.SenderDomain == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No sending domain configured"})
		return
	}

	start := time.Now()
	analysis := h.domainCheck.Analyze(c.Request.Context(), *settings.SenderDomain)

	if h.metrics != nil {
		result := "ok"
		if analysis.DNSError != nil || analysis.WHOISError != nil {
			result = "partial"
		}
		h.metrics.RecordDomainCheck(tenantID, result, time.Since(start))
	}

	c.JSON(http.StatusOK, analysis)
}
