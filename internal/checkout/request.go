package checkout

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Request is one purchase attempt as submitted by the landing-page form.
// It lives for the duration of a single HTTP request and is never persisted.
type Request struct {
	Name     string
	Phone    string
	Address  string
	Quantity int
	Landing  string
	PageURL  string
	UTM      map[string]string
}

// ParseQuantity interprets the raw quantity field of the checkout form.
// Numbers are returned as-is so the validator can still reject zero and
// negatives, and numeric strings count as numbers because form widgets
// routinely serialize them that way. Absent, null and non-numeric values
// fall back to 1. The invoice flow deliberately does not share this
// leniency.
func ParseQuantity(raw json.RawMessage) int {
	if len(raw) == 0 || string(raw) == "null" {
		return 1
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 1
}
