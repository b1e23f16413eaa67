// Package ports defines the contracts between the ordering workflow and the
// outside world: the remote ordering service and the interactive console.
// Adapters implement them; tests replace them with mocks.
package ports

import (
	"context"

	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/core/domain/model/store"
	"pizzaorder/internal/core/domain/model/tracking"
)

// PizzaAPI is the remote food-ordering service. Every call is a single
// blocking request bounded by the adapter's timeouts and is never retried.
type PizzaAPI interface {
	// FindStores resolves a delivery address to its canonical form and the
	// stores that deliver to it. An empty store list is not an error.
	FindStores(ctx context.Context, query store.Query) (store.Lookup, error)

	// ValidateOrder asks the service to check the order. A rejection is
	// returned as an error; the reply body is otherwise ignored.
	ValidateOrder(ctx context.Context, envelope order.Envelope) error

	// PriceOrder returns the pricing reply for the order.
	PriceOrder(ctx context.Context, envelope order.Envelope) (order.PriceResponse, error)

	// PlaceOrder submits the order for delivery.
	PlaceOrder(ctx context.Context, envelope order.Envelope) error

	// TrackOrders lists the orders the tracker knows for a phone number.
	TrackOrders(ctx context.Context, phone string) ([]tracking.OrderStatus, error)
}
