package commands

import (
	"context"
	"errors"
	"time"

	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/core/ports"
	"pizzaorder/internal/pkg/logger"
)

var (
	ErrNoStoresFound         = errors.New("sorry, there are no delivery locations near you")
	ErrInvalidStoreSelection = errors.New("not a valid store option")
	ErrOrderCancelled        = errors.New("order cancelled, nothing was placed")
)

// PlaceOrderCommandHandler drives one ordering session end to end: store
// selection, validation, product selection, a second validation, pricing,
// contact details, confirmation and placement.
//
// The first failing stage ends the session. Its error is returned wrapped in a
// *StageError and nothing after it runs; in particular no placement request is
// made unless the user confirmed the priced order.
type PlaceOrderCommandHandler struct {
	api     ports.PizzaAPI
	console ports.Console
	log     logger.Logger
}

// NewPlaceOrderCommandHandler creates the handler from its collaborators.
func NewPlaceOrderCommandHandler(
	api ports.PizzaAPI,
	console ports.Console,
	log logger.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		api:     api,
		console: console,
		log:     log,
	}
}

// session is the state of a single Handle call.
type session struct {
	cmd   PlaceOrderCommand
	order *order.Order
	stage Stage
	log   logger.Logger
}

type step struct {
	stage Stage
	run   func(ctx context.Context, s *session) error
}

// Handle runs the whole session for cmd.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s := &session{
		cmd:   cmd,
		order: order.NewOrder(),
		stage: NotStarted,
		log:   h.log.With("city_line", cmd.Query().CityLine()),
	}

	steps := []step{
		{StoreSelection, h.selectStore},
		{PreValidation, h.validateOrder},
		{ProductSelection, h.chooseProducts},
		{PostValidation, h.validateOrder},
		{Pricing, h.priceOrder},
		{CustomerInfoAndConfirmation, h.confirmAndPlace},
	}

	for _, st := range steps {
		next, err := s.stage.Advance(st.stage)
		if err != nil {
			return err
		}
		s.stage = next

		started := time.Now()
		s.log.Debugw("stage started", "stage", st.stage.String())

		if err = st.run(ctx, s); err != nil {
			s.log.Warnw("stage failed",
				"stage", st.stage.String(),
				"duration", time.Since(started),
				"error", err,
			)
			return &StageError{Stage: st.stage, Err: err}
		}

		s.log.Infow("stage finished", "stage", st.stage.String(), "duration", time.Since(started))
	}

	return nil
}

func (h PlaceOrderCommandHandler) validateOrder(ctx context.Context, s *session) error {
	if err := s.order.ReadyForValidation(); err != nil {
		return err
	}
	return h.api.ValidateOrder(ctx, s.order.Envelope())
}

func (h PlaceOrderCommandHandler) priceOrder(ctx context.Context, s *session) error {
	if err := s.order.ReadyForPricing(); err != nil {
		return err
	}

	response, err := h.api.PriceOrder(ctx, s.order.Envelope())
	if err != nil {
		return err
	}

	return s.order.SetPrice(response)
}
