package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"funnel-checkout/internal/checkout"
	"funnel-checkout/internal/notify"
	"funnel-checkout/pkg/gateway"
)

type checkoutPayload struct {
	Name     string            `json:"name"`
	Phone    string            `json:"phone"`
	Address  string            `json:"address"`
	Quantity json.RawMessage   `json:"quantity"`
	Landing  string            `json:"landing"`
	PageURL  string            `json:"page_url"`
	UTM      map[string]string `json:"utm"`
}

func (p *checkoutPayload) toRequest() *checkout.Request {
	req := &checkout.Request{
		Name:     strings.TrimSpace(p.Name),
		Phone:    strings.TrimSpace(p.Phone),
		Address:  strings.TrimSpace(p.Address),
		Quantity: checkout.ParseQuantity(p.Quantity),
		Landing:  strings.TrimSpace(p.Landing),
		PageURL:  p.PageURL,
		UTM:      p.UTM,
	}
	if req.Landing == "" {
		req.Landing = checkout.LandingFromURL(req.PageURL)
	}
	return req
}

// handleCreateCheckout runs the main purchase pipeline: validate, resolve the
// price, rate-limit, create the hosted payment form, notify, respond.
func (s *Server) handleCreateCheckout(c *gin.Context) {
	if len(s.prices) == 0 || !s.gw.Configured() {
		fail(c, http.StatusInternalServerError, errServerMisconfigured)
		return
	}

	var payload checkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, errInvalidJSON)
		return
	}
	req := payload.toRequest()

	if errs := req.Validate(); len(errs) > 0 {
		// Send as much as we have so funnel drop-offs stay visible.
		s.notifier.Send(c.Request.Context(), notify.AttemptMessage(req, errs))
		fail(c, http.StatusBadRequest, errValidation)
		return
	}

	if req.Landing == "" {
		fail(c, http.StatusBadRequest, errMissingLanding)
		return
	}
	amountCents, ok := s.prices.AmountCents(req.Landing, req.Quantity)
	if !ok {
		fail(c, http.StatusBadRequest, errUnknownLanding)
		return
	}
	amount := checkout.FormatAmount(amountCents)

	if !s.limiter.Allow(c.Request.Context(), c.ClientIP()) {
		fail(c, http.StatusTooManyRequests, errRateLimited)
		return
	}

	order, err := s.gw.CreateForm(c.Request.Context(), gateway.FormRequest{
		Amount:        amount,
		Currency:      s.cfg.PaymentCurrency,
		PaymentMethod: s.cfg.PaymentMethod,
		WebhookURL:    s.cfg.WebhookURL,
	})
	if err != nil || order.OrderID == "" || order.RedirectURL == "" {
		if err != nil {
			s.logger.Error("Gateway createForm failed", zap.Error(err))
		}
		fail(c, http.StatusBadGateway, errGateway)
		return
	}

	s.notifier.Send(c.Request.Context(),
		notify.OrderMessage(req, order.OrderID, amount, s.cfg.PaymentCurrency))

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"order_id":     order.OrderID,
		"redirect_url": order.RedirectURL,
	})
}
