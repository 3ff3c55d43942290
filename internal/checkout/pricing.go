package checkout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// PriceTable maps a landing key to its unit price in integer cents. The
// browser never supplies a price; amounts are always computed from this
// table.
type PriceTable map[string]int64

// LoadPriceTable reads the static price table once at startup. The file is a
// flat JSON object, e.g. {"lp-01": 1999}.
func LoadPriceTable(path string) (PriceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prices file: %w", err)
	}

	var table PriceTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse prices file: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("prices file %s has no entries", path)
	}
	return table, nil
}

// AmountCents computes the order total for a landing in integer cents.
// The bool is false when the landing key is not in the table.
func (t PriceTable) AmountCents(landing string, quantity int) (int64, bool) {
	price, ok := t[landing]
	if !ok {
		return 0, false
	}
	return price * int64(quantity), true
}

// FormatAmount renders cents as the fixed-point decimal string sent on the
// wire, always with exactly two fraction digits: 1999 -> "19.99". Floats
// never touch the amount.
func FormatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
