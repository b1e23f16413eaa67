package store

import (
	"errors"
	"fmt"
	"strings"

	"pizzaorder/internal/pkg/errs"
	"pizzaorder/internal/pkg/guard"
)

// DeliveryType is the only service type this CLI asks the locator for.
const DeliveryType = "Delivery"

var ErrQueryIsNotConstructed = errors.New("Query must be created via NewQuery constructor")

// Query is a store-locator request for a delivery address as the user typed it.
//
// Example:
//
//	q, err := store.NewQuery("3457 West 1st Avenue", "Vancouver", "BC", "V6R1G6")
//	q.CityLine() // "Vancouver, BC V6R1G6"
type Query struct { //nolint:recvcheck //setters need pointer receivers
	street     string
	city       string
	province   string
	postalCode string

	guard guard.ConstructorGuard
}

// NewQuery trims every part and requires all four to be non-empty.
func NewQuery(street, city, province, postalCode string) (Query, error) {
	q := Query{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.set(&q.street, "street", street),
		q.set(&q.city, "city", city),
		q.set(&q.province, "province", province),
		q.set(&q.postalCode, "postal code", postalCode),
	); err != nil {
		return Query{}, err
	}

	return q, nil
}

func (q Query) Validate() error {
	return q.guard.Validate(ErrQueryIsNotConstructed)
}

func (q Query) Street() string     { return q.street }
func (q Query) City() string       { return q.city }
func (q Query) Province() string   { return q.province }
func (q Query) PostalCode() string { return q.postalCode }

// CityLine composes the locator's "c" parameter: "city, province postal_code".
func (q Query) CityLine() string {
	return fmt.Sprintf("%s, %s %s", q.city, q.province, q.postalCode)
}

func (q *Query) set(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
