package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzaorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func (h PlaceOrderCommandHandler) confirmAndPlace(ctx context.Context, s *session) error {
	if err := h.enterInformation(s); err != nil {
		return err
	}

	payment, err := s.order.Payment()
	if err != nil {
		return err
	}

	total := formatTotal(payment)
	confirmed, err := h.console.Confirm(fmt.Sprintf("Your total is $%s. Place order?", total), false)
	if err != nil {
		return err
	}
	if !confirmed {
		s.log.Infow("order declined", "payment", total)
		return ErrOrderCancelled
	}

	if err = h.api.PlaceOrder(ctx, s.order.Envelope()); err != nil {
		return err
	}

	s.log.Infow("order placed", "payment", total)
	h.console.Say("Your order has been placed!")
	return nil
}

// enterInformation repeats the contact prompts until the answers validate.
func (h PlaceOrderCommandHandler) enterInformation(s *session) error {
	for {
		first, err := h.console.Prompt("First name")
		if err != nil {
			return err
		}
		last, err := h.console.Prompt("Last name")
		if err != nil {
			return err
		}
		phone, err := h.console.Prompt("Phone number")
		if err != nil {
			return err
		}
		email, err := h.console.Prompt("Email")
		if err != nil {
			return err
		}

		err = s.order.SetCustomerInfo(first, last, phone, email)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrValueIsInvalid) && !errors.Is(err, errs.ErrValueIsRequired) {
			return err
		}
		h.console.Warn(err.Error())
	}
}

// formatTotal pads the payment to whole cents but never rounds it, so a
// total quoted with more precision is shown as quoted.
func formatTotal(payment float64) string {
	d := decimal.NewFromFloat(payment)
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
