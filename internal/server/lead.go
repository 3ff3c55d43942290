package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"funnel-checkout/internal/notify"
)

// handleSendLead accepts a contact request from the lead form. There is no
// payment and no rate limiting; a valid lead is notified and answered with a
// static thank-you redirect.
func (s *Server) handleSendLead(c *gin.Context) {
	var payload checkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, errInvalidJSON)
		return
	}
	req := payload.toRequest()

	if errs := req.ValidateLead(s.cfg.LeadLanding); len(errs) > 0 {
		fail(c, http.StatusBadRequest, errValidation)
		return
	}

	s.notifier.Send(c.Request.Context(), notify.LeadMessage(req))

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"redirect_url": s.cfg.LeadRedirectURL,
	})
}
