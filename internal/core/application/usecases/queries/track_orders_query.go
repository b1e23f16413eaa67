// Package queries contains read operations against the remote ordering service.
// Queries never modify an order; they only report on what already exists.
package queries

import (
	"errors"

	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/pkg/errs"
	"pizzaorder/internal/pkg/guard"
)

var (
	ErrTrackOrdersQueryIsNotConstructed = errors.New(
		"TrackOrdersQuery must be created via NewTrackOrdersQuery constructor",
	)
)

// TrackOrdersQuery asks the order tracker for every recent order placed with a
// phone number.
//
// Example:
//
//	query, err := NewTrackOrdersQuery("(604) 555-0199")
//	if err != nil {
//	    return err
//	}
//
//	statuses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("tracker unavailable: %w", err)
//	}
//	for _, s := range statuses {
//	    fmt.Println(s)
//	}
type TrackOrdersQuery struct {
	phone string

	guard guard.ConstructorGuard
}

// NewTrackOrdersQuery normalises the phone number the same way contact details
// are normalised before placement, so the tracker sees the stored form.
func NewTrackOrdersQuery(phone string) (TrackOrdersQuery, error) {
	normalized := order.NormalizePhone(phone)
	if normalized == "" {
		return TrackOrdersQuery{}, errs.NewValueIsRequiredError("phone")
	}

	return TrackOrdersQuery{
		phone: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrdersQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrdersQueryIsNotConstructed)
}

func (q TrackOrdersQuery) Phone() string {
	return q.phone
}
