package commands

import (
	"context"
	"strings"

	"pizzaorder/internal/core/domain/model/menu"
	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/core/ports"
)

// listToppingsInput asks the topping prompt for the catalogue instead of a choice.
const listToppingsInput = "ls"

func (h PlaceOrderCommandHandler) chooseProducts(_ context.Context, s *session) error {
	selections, err := collectSelections(h.console)
	if err != nil {
		return err
	}

	if err = s.order.SetProducts(selections); err != nil {
		return err
	}

	s.log.Infow("products selected", "count", len(selections))
	return nil
}

// collectSelections asks for pizzas until the user declines another one.
// At least one pizza is always asked for.
func collectSelections(console ports.Console) ([]order.Selection, error) {
	var selections []order.Selection

	for {
		size, err := chooseSize(console)
		if err != nil {
			return nil, err
		}

		toppings, err := chooseToppings(console)
		if err != nil {
			return nil, err
		}

		selections = append(selections, order.Selection{Size: size, Toppings: toppings})

		another, err := console.Confirm("Do you want to add another pizza?", false)
		if err != nil {
			return nil, err
		}
		if !another {
			return selections, nil
		}
	}
}

// chooseSize fails with *menu.UnknownSizeError right away rather than after
// every pizza has been described.
func chooseSize(console ports.Console) (string, error) {
	answer, err := console.Prompt("Choose a size (s, m, l)")
	if err != nil {
		return "", err
	}

	size := strings.ToLower(strings.TrimSpace(answer))
	if _, err = menu.SizeCode(size); err != nil {
		return "", err
	}
	return size, nil
}

// chooseToppings reads a comma separated topping list, answering "ls" with the
// known names. Names are trimmed and lowercased, so "Pepperoni" matches the
// same topping as "pepperoni".
func chooseToppings(console ports.Console) ([]string, error) {
	for {
		answer, err := console.Prompt("Choose toppings (comma-separated list). Type ls for options")
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(answer) == listToppingsInput {
			console.Say(strings.Join(menu.ToppingNames(), ", "))
			continue
		}

		toppings := strings.Split(answer, ",")
		for i, name := range toppings {
			toppings[i] = strings.ToLower(strings.TrimSpace(name))
		}
		return toppings, nil
	}
}
