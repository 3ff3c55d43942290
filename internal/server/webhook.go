package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"funnel-checkout/internal/notify"
)

type webhookPayload struct {
	OrderID   string          `json:"orderId"`
	Amount    json.RawMessage `json:"amount"`
	Status    string          `json:"status"`
	Method    string          `json:"method"`
	Currency  string          `json:"currency"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

// handleWebhook relays an asynchronous payment-status callback to the
// operator channel. The gateway gets 204 no matter what the notifier does;
// only an unparseable body is rejected.
func (s *Server) handleWebhook(c *gin.Context) {
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	s.notifier.Send(c.Request.Context(), notify.StatusMessage(notify.PaymentStatus{
		OrderID:   payload.OrderID,
		Amount:    rawString(payload.Amount),
		Currency:  payload.Currency,
		Method:    payload.Method,
		Status:    payload.Status,
		CreatedAt: rawString(payload.CreatedAt),
	}))

	c.Status(http.StatusNoContent)
}
