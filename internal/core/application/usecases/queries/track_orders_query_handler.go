package queries

import (
	"context"

	"pizzaorder/internal/core/domain/model/tracking"
	"pizzaorder/internal/core/ports"
)

// TrackOrdersQueryHandler reads order statuses through the remote API.
type TrackOrdersQueryHandler struct {
	api ports.PizzaAPI
}

func NewTrackOrdersQueryHandler(api ports.PizzaAPI) TrackOrdersQueryHandler {
	return TrackOrdersQueryHandler{api: api}
}

// Handle returns the tracked orders for the query's phone number. An empty,
// non-nil slice means the tracker knows no orders for it.
func (h TrackOrdersQueryHandler) Handle(
	ctx context.Context,
	query TrackOrdersQuery,
) ([]tracking.OrderStatus, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses, err := h.api.TrackOrders(ctx, query.Phone())
	if err != nil {
		return nil, err
	}
	if statuses == nil {
		statuses = make([]tracking.OrderStatus, 0)
	}

	return statuses, nil
}
