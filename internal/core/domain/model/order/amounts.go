package order

import (
	"encoding/json"
	"errors"
)

var ErrPriceNotAvailable = errors.New("order has not been priced yet")

// Amounts is the pricing breakdown (Menu, Discount, Tax, Payment, ...) exactly as
// the remote service returned it. It is kept whole because the placement request
// must carry it back.
type Amounts map[string]any

// PriceResponse is the part of a price-order reply the order consumes.
type PriceResponse struct {
	Order PricedOrder `json:"Order"`
}

// PricedOrder is the order object nested in a price-order reply.
type PricedOrder struct {
	Amounts Amounts `json:"Amounts"`
}

// Payment returns the "Payment" amount when it is present and numeric.
func (a Amounts) Payment() (float64, bool) {
	switch v := a["Payment"].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func (a Amounts) clone() Amounts {
	if a == nil {
		return nil
	}
	out := make(Amounts, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
