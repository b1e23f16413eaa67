package cmd

import (
	"context"
	"errors"
	"time"

	"pizzaorder/internal/core/application/usecases/commands"
	"pizzaorder/internal/core/application/usecases/queries"
	"pizzaorder/internal/core/ports"
	"pizzaorder/internal/pkg/logger"
)

// AddressInput is the delivery address as given on the command line.
type AddressInput struct {
	Street     string
	City       string
	Province   string
	PostalCode string
}

// Complete prompts for every part left blank.
func (a AddressInput) Complete(console ports.Console) (AddressInput, error) {
	parts := []struct {
		label string
		value *string
	}{
		{"Address", &a.Street},
		{"City", &a.City},
		{"Province", &a.Province},
		{"Postal code", &a.PostalCode},
	}

	for _, p := range parts {
		if *p.value != "" {
			continue
		}
		answer, err := console.Prompt(p.label)
		if err != nil {
			return AddressInput{}, err
		}
		*p.value = answer
	}

	return a, nil
}

// PlaceOrder runs one ordering session for input.
func PlaceOrder(ctx context.Context, root *CompositionRoot, input AddressInput) error {
	address, err := input.Complete(root.Console())
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(address.Street, address.City, address.Province, address.PostalCode)
	if err != nil {
		return err
	}

	return root.CreatePlaceOrderCommandHandler().Handle(ctx, cmd)
}

// TrackOrders prints the tracker's view of the orders placed with phone. With a
// positive watch interval it keeps polling until every order is complete.
func TrackOrders(ctx context.Context, root *CompositionRoot, phone string, watch time.Duration) error {
	query, err := queries.NewTrackOrdersQuery(phone)
	if err != nil {
		return err
	}

	if watch > 0 {
		return root.CreateTrackerWatchJob(query, watch).Run(ctx)
	}

	statuses, err := root.CreateTrackOrdersQueryHandler().Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		root.Console().Say("No orders found for " + query.Phone())
		return nil
	}
	for _, s := range statuses {
		root.Console().Say(s.String())
	}
	return nil
}

// InterruptedMessage is shown when the user stopped the run with Ctrl-C.
const InterruptedMessage = "interrupted"

// Finish reports the outcome of a run exactly once and returns the process
// exit code. Declining the final confirmation and a Ctrl-C are normal exits.
func Finish(console ports.Console, log logger.Logger, err error) int {
	if err == nil {
		return 0
	}

	stage := commands.NotStarted
	var stageErr *commands.StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage
	}

	if errors.Is(err, commands.ErrOrderCancelled) {
		log.Infow("session cancelled", "stage", stage.String())
		console.Say(err.Error())
		return 0
	}

	if errors.Is(err, context.Canceled) {
		log.Infow("session interrupted", "stage", stage.String(), "error", err)
		console.Say(InterruptedMessage)
		return 0
	}

	log.Errorw("session failed", "stage", stage.String(), "error", err)
	console.Warn(err.Error())
	return 1
}
