package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"funnel-checkout/pkg/gateway"
)

// Ad-hoc invoices always use this fixed pair, distinct from the funnel flow.
const (
	invoiceCurrency      = "EUR-GT"
	invoicePaymentMethod = "card"
)

type invoicePayload struct {
	Order string          `json:"order"`
	Title string          `json:"title"`
	Qty   json.RawMessage `json:"qty"`
	Price json.RawMessage `json:"price"`
	Ship  json.RawMessage `json:"ship"`
}

// parseDecimalField accepts decimal strings with either a comma or a dot as
// the fractional separator, as typed by the operator.
func parseDecimalField(raw json.RawMessage) (decimal.Decimal, error) {
	text := strings.ReplaceAll(strings.TrimSpace(rawString(raw)), ",", ".")
	return decimal.NewFromString(text)
}

// handleCreateInvoice creates a payment form for an already-known order. It
// computes its own total, skips the price table, the rate limiter and the
// operator notification. Unlike the checkout flow, a non-numeric quantity is
// an error here, not a default.
func (s *Server) handleCreateInvoice(c *gin.Context) {
	var payload invoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, errInvalidJSON)
		return
	}

	if strings.TrimSpace(payload.Order) == "" {
		fail(c, http.StatusBadRequest, errOrderRequired)
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		fail(c, http.StatusBadRequest, errTitleRequired)
		return
	}

	qty, err := parseDecimalField(payload.Qty)
	if err != nil || qty.Sign() <= 0 {
		fail(c, http.StatusBadRequest, errQtyNotPositive)
		return
	}
	price, err := parseDecimalField(payload.Price)
	if err != nil || price.Sign() < 0 {
		fail(c, http.StatusBadRequest, errPriceNegative)
		return
	}
	ship := decimal.Zero
	if len(payload.Ship) > 0 && string(payload.Ship) != "null" {
		ship, err = parseDecimalField(payload.Ship)
		if err != nil || ship.Sign() < 0 {
			fail(c, http.StatusBadRequest, errShipNegative)
			return
		}
	}

	if !s.invoiceGW.Configured() || s.cfg.WebhookURL == "" {
		fail(c, http.StatusInternalServerError, errServerMisconfigured)
		return
	}

	amount := qty.Mul(price).Add(ship).Round(2).StringFixed(2)

	order, err := s.invoiceGW.CreateForm(c.Request.Context(), gateway.FormRequest{
		Amount:        amount,
		Currency:      invoiceCurrency,
		PaymentMethod: invoicePaymentMethod,
		WebhookURL:    s.cfg.WebhookURL,
	})
	if err != nil {
		s.logger.Error("Gateway createForm failed", zap.Error(err))
		if errors.Is(err, gateway.ErrBadJSON) {
			fail(c, http.StatusBadGateway, errGatewayInvalidJSON)
			return
		}
		fail(c, http.StatusBadGateway, errGateway)
		return
	}
	if order.RedirectURL == "" {
		fail(c, http.StatusBadGateway, errGateway)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"redirect_url": order.RedirectURL,
		"orderId":      order.OrderID,
	})
}
