package order

import (
	"errors"

	"pizzaorder/internal/core/domain/model/kernel"
	"pizzaorder/internal/core/domain/model/store"
	"pizzaorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrStoreAlreadySet   = errors.New("store has already been selected")
	ErrAddressAlreadySet = errors.New("address has already been set")
)

// Order is the aggregate a session builds up before placing it.
//
// Order follows these invariants:
//   - The store and the address are set once and never replaced
//   - Products are replaced as a whole, never partially
//   - Amounts are absent until SetPrice succeeds
//   - Can only be created through NewOrder
//
// Order is not safe for concurrent use; a session owns exactly one.
type Order struct {
	// address is the locator's canonical form of the delivery address
	address kernel.Address

	// storeID is the chosen fulfilment location ("" until selected)
	storeID string

	// products are the line items in selection order
	products []Product

	// amounts is the pricing breakdown (nil until priced)
	amounts Amounts

	// customer holds the contact fields
	customer CustomerInfo

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an empty order carrying only the protocol defaults.
func NewOrder() *Order {
	return &Order{isConstructed: true}
}

// Validate ensures the Order instance was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Address returns the canonical delivery address (zero until set).
func (o *Order) Address() kernel.Address {
	return o.address
}

// StoreID returns the selected store's identifier ("" until set).
func (o *Order) StoreID() string {
	return o.storeID
}

// Products returns a copy of the line items.
func (o *Order) Products() []Product {
	out := make([]Product, len(o.products))
	for i, p := range o.products {
		out[i] = p.clone()
	}
	return out
}

// Customer returns the contact fields.
func (o *Order) Customer() CustomerInfo {
	return o.customer
}

// SetAddress stores the canonical address returned by the store locator.
func (o *Order) SetAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	if !o.address.IsZero() {
		return ErrAddressAlreadySet
	}
	o.address = address
	return nil
}

// SetStore stores the selected store's identifier.
func (o *Order) SetStore(s store.Store) error {
	if s.ID() == "" {
		return errs.NewValueIsRequiredError("store id")
	}
	if o.storeID != "" {
		return ErrStoreAlreadySet
	}
	o.storeID = s.ID()
	return nil
}

// SetProducts turns the selections into line items, numbered from zero in
// selection order. An unknown size fails the whole call with a
// *menu.UnknownSizeError and leaves the current products untouched.
func (o *Order) SetProducts(selections []Selection) error {
	products := make([]Product, 0, len(selections))
	for i, selection := range selections {
		product, err := newProduct(i, selection)
		if err != nil {
			return err
		}
		products = append(products, product)
	}
	o.products = products
	return nil
}

// SetPrice stores the Amounts object of a price-order reply.
func (o *Order) SetPrice(response PriceResponse) error {
	if len(response.Order.Amounts) == 0 {
		return errs.NewValueIsRequiredError("Order.Amounts")
	}
	o.amounts = response.Order.Amounts.clone()
	return nil
}

// SetCustomerInfo validates and stores the contact fields.
func (o *Order) SetCustomerInfo(first, last, phone, email string) error {
	info, err := NewCustomerInfo(first, last, phone, email)
	if err != nil {
		return err
	}
	o.customer = info
	return nil
}

// Payment returns the total to be paid, or ErrPriceNotAvailable before pricing.
func (o *Order) Payment() (float64, error) {
	if o.amounts == nil {
		return 0, ErrPriceNotAvailable
	}
	payment, ok := o.amounts.Payment()
	if !ok {
		return 0, ErrPriceNotAvailable
	}
	return payment, nil
}

// ReadyForValidation reports whether the order may be sent to the remote service.
func (o *Order) ReadyForValidation() error {
	var problems []error
	if o.storeID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("StoreID"))
	}
	if o.address.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("Address"))
	}
	return errors.Join(problems...)
}

// ReadyForPricing additionally requires at least one product.
func (o *Order) ReadyForPricing() error {
	err := o.ReadyForValidation()
	if len(o.products) == 0 {
		err = errors.Join(err, errs.NewValueIsRequiredError("Products"))
	}
	return err
}
