package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"funnel-checkout/internal/checkout"
)

func TestStatusGlyph(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{"received", "✅ PAID"},
		{"RECEIVED", "✅ PAID"},
		{"pending", "⏳ PENDING"},
		{"canceled", "❌ CANCELED"},
		{"timeout", "⌛ TIMEOUT"},
		{"exploded", "❔"},
		{"", "❔"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusGlyph(tc.status), "status %q", tc.status)
	}
}

func TestOrderMessage(t *testing.T) {
	req := &checkout.Request{
		Name:     "Ana",
		Phone:    "+1 555 0100",
		Address:  "1 Main St",
		Quantity: 2,
		Landing:  "lp-01",
		PageURL:  "https://site.example/landings/lp-01/",
		UTM:      map[string]string{"utm_source": "ads"},
	}

	msg := OrderMessage(req, "X1", "39.98", "EUR")
	lines := strings.Split(msg, "\n")

	assert.Equal(t, "🧾 New order", lines[0])
	assert.Contains(t, lines, "Landing: lp-01")
	assert.Contains(t, lines, "Order ID: X1")
	assert.Contains(t, lines, "Quantity: 2")
	assert.Contains(t, lines, "Amount: 39.98 EUR")
	assert.Contains(t, lines, "Page: https://site.example/landings/lp-01/")
	assert.Contains(t, lines, `UTM: {"utm_source":"ads"}`)
}

func TestOrderMessage_OmitsEmptyPageAndUTM(t *testing.T) {
	req := &checkout.Request{Name: "Ana", Phone: "5550100", Address: "x", Quantity: 1, Landing: "lp-01"}

	msg := OrderMessage(req, "X1", "19.99", "EUR")

	assert.NotContains(t, msg, "Page:")
	assert.NotContains(t, msg, "UTM:")
}

func TestAttemptMessage_Placeholders(t *testing.T) {
	req := &checkout.Request{Quantity: 0}

	msg := AttemptMessage(req, []string{"missing_name", "invalid_phone"})
	lines := strings.Split(msg, "\n")

	assert.Equal(t, "⚠️ Incomplete order attempt", lines[0])
	assert.Contains(t, lines, "Landing: (unknown)")
	assert.Contains(t, lines, "Name: (empty)")
	assert.Contains(t, lines, "Phone: (empty)")
	assert.Contains(t, lines, "Address: (empty)")
	assert.Contains(t, lines, "Quantity: (empty)")
	assert.Contains(t, lines, "Errors: missing_name, invalid_phone")
}

func TestLeadMessage(t *testing.T) {
	req := &checkout.Request{Name: "Ana", Phone: "5550100", Landing: "lp-003sl"}

	msg := LeadMessage(req)
	lines := strings.Split(msg, "\n")

	assert.Equal(t, "📞 New contact request", lines[0])
	assert.Contains(t, lines, "Landing: lp-003sl")
	assert.Contains(t, lines, "Name: Ana")
}

func TestStatusMessage(t *testing.T) {
	msg := StatusMessage(PaymentStatus{
		OrderID:   "X1",
		Amount:    "39.98",
		Currency:  "EUR",
		Method:    "card",
		Status:    "received",
		CreatedAt: "2024-05-01T10:00:00Z",
	})
	lines := strings.Split(msg, "\n")

	assert.Equal(t, "✅ PAID", lines[0])
	assert.Contains(t, lines, "Order ID: X1")
	assert.Contains(t, lines, "Amount: 39.98 EUR")
	assert.Contains(t, lines, "Method: card")
	assert.Contains(t, lines, "Created: 2024-05-01T10:00:00Z")
}

func TestStatusMessage_OmitsEmptyCreatedAt(t *testing.T) {
	msg := StatusMessage(PaymentStatus{OrderID: "X1", Status: "pending"})

	assert.NotContains(t, msg, "Created:")
}
