package notify

import (
	"encoding/json"
	"fmt"
	"strings"

	"funnel-checkout/internal/checkout"
)

// OrderMessage is the line-set announcing a checkout that reached the
// payment gateway.
func OrderMessage(req *checkout.Request, orderID, amount, currency string) string {
	lines := []string{
		"🧾 New order",
		"Landing: " + req.Landing,
		"Order ID: " + orderID,
		"Name: " + req.Name,
		"Phone: " + req.Phone,
		"Address: " + req.Address,
		fmt.Sprintf("Quantity: %d", req.Quantity),
		fmt.Sprintf("Amount: %s %s", amount, currency),
	}
	return strings.Join(appendPageAndUTM(lines, req.PageURL, req.UTM), "\n")
}

// AttemptMessage summarizes a failed validation so funnel drop-offs stay
// visible to the operator. Empty fields are shown as placeholders.
func AttemptMessage(req *checkout.Request, errs []string) string {
	lines := []string{
		"⚠️ Incomplete order attempt",
		"Landing: " + orElse(req.Landing, "(unknown)"),
		"Name: " + orElse(req.Name, "(empty)"),
		"Phone: " + orElse(req.Phone, "(empty)"),
		"Address: " + orElse(req.Address, "(empty)"),
		"Quantity: " + quantityLine(req.Quantity),
		"Errors: " + strings.Join(errs, ", "),
	}
	return strings.Join(appendPageAndUTM(lines, req.PageURL, req.UTM), "\n")
}

// LeadMessage announces a contact request from the lead form.
func LeadMessage(req *checkout.Request) string {
	lines := []string{
		"📞 New contact request",
		"Landing: " + req.Landing,
		"Name: " + req.Name,
		"Phone: " + req.Phone,
	}
	return strings.Join(appendPageAndUTM(lines, req.PageURL, req.UTM), "\n")
}

// PaymentStatus is a gateway callback relayed to the operator channel.
type PaymentStatus struct {
	OrderID   string
	Amount    string
	Currency  string
	Method    string
	Status    string
	CreatedAt string
}

// StatusGlyph maps a gateway payment status (case-insensitive) onto its
// display form. Unknown statuses get a question mark rather than an error.
func StatusGlyph(status string) string {
	switch strings.ToLower(status) {
	case "received":
		return "✅ PAID"
	case "pending":
		return "⏳ PENDING"
	case "canceled":
		return "❌ CANCELED"
	case "timeout":
		return "⌛ TIMEOUT"
	default:
		return "❔"
	}
}

// StatusMessage is the line-set for an asynchronous payment-status callback.
func StatusMessage(p PaymentStatus) string {
	lines := []string{
		StatusGlyph(p.Status),
		"Order ID: " + p.OrderID,
		fmt.Sprintf("Amount: %s %s", p.Amount, p.Currency),
		"Method: " + p.Method,
	}
	if p.CreatedAt != "" {
		lines = append(lines, "Created: "+p.CreatedAt)
	}
	return strings.Join(lines, "\n")
}

func appendPageAndUTM(lines []string, pageURL string, utm map[string]string) []string {
	if pageURL != "" {
		lines = append(lines, "Page: "+pageURL)
	}
	if len(utm) > 0 {
		if data, err := json.Marshal(utm); err == nil {
			lines = append(lines, "UTM: "+string(data))
		}
	}
	return lines
}

func orElse(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func quantityLine(q int) string {
	if q < 1 {
		return "(empty)"
	}
	return fmt.Sprintf("%d", q)
}
