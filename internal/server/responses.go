package server

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// API error codes. The browser-side widget switches on these strings, so
// they are part of the wire contract.
const (
	errMethodNotAllowed    = "method_not_allowed"
	errInvalidJSON         = "invalid_json"
	errValidation          = "validation_error"
	errMissingLanding      = "missing_landing"
	errUnknownLanding      = "unknown_landing"
	errRateLimited         = "rate_limited"
	errGateway             = "payment_gateway_error"
	errGatewayInvalidJSON  = "payment_gateway_invalid_json"
	errServerMisconfigured = "server_misconfigured"

	errOrderRequired  = "order_is_required"
	errTitleRequired  = "title_is_required"
	errQtyNotPositive = "qty_must_be_greater_than_zero"
	errPriceNegative  = "price_must_be_non_negative"
	errShipNegative   = "ship_must_be_non_negative"
)

func fail(c *gin.Context, status int, code string) {
	c.JSON(status, gin.H{"ok": false, "error": code})
}

// rawString reads a JSON field that clients send either as a string or as a
// bare number, mirroring how loosely the form widgets serialize.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
