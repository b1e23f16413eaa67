package commands

import (
	"context"
	"fmt"

	"pizzaorder/internal/pkg/errs"
)

func (h PlaceOrderCommandHandler) selectStore(ctx context.Context, s *session) error {
	lookup, err := h.api.FindStores(ctx, s.cmd.Query())
	if err != nil {
		return err
	}

	stores := lookup.Available()
	if len(stores) == 0 {
		return ErrNoStoresFound
	}

	for i, st := range stores {
		h.console.Say(fmt.Sprintf("%d) %s", i+1, st.Summary()))
	}

	index, err := h.console.PromptInt("Choose a location")
	if err != nil {
		return err
	}
	if index < 1 || index > len(stores) {
		return fmt.Errorf("%w: %w", ErrInvalidStoreSelection,
			errs.NewValueIsOutOfRangeError("store", index, 1, len(stores)))
	}
	chosen := stores[index-1]

	if err = s.order.SetAddress(lookup.Address); err != nil {
		return err
	}
	if err = s.order.SetStore(chosen); err != nil {
		return err
	}

	s.log = s.log.With("store_id", chosen.ID())
	s.log.Infow("store selected", "offered", len(stores), "index", index)
	return nil
}
