package commands

import (
	"errors"

	"pizzaorder/internal/core/domain/model/store"
	"pizzaorder/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand starts an ordering session for a delivery address.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("3457 West 1st Avenue", "Vancouver", "BC", "V6R1G6")
//	if err != nil {
//	    return fmt.Errorf("invalid address: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(api, console, log)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, ErrOrderCancelled):
//	    // the user said no at the final confirmation
//	case err != nil:
//	    // the session failed; err.Error() is the message to show
//	}
type PlaceOrderCommand struct {
	query store.Query

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the four address parts.
func NewPlaceOrderCommand(street, city, province, postalCode string) (PlaceOrderCommand, error) {
	query, err := store.NewQuery(street, city, province, postalCode)
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		query: query,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Query returns the store-locator query for the delivery address.
func (c PlaceOrderCommand) Query() store.Query {
	return c.query
}
