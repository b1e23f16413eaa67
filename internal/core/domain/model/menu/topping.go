package menu

import (
	"slices"
	"strings"
)

// Portion is the option descriptor for a topping: which part of the pizza it
// covers ("1/1" is the whole pizza) and how much of it ("1" is normal).
type Portion map[string]string

// WholePizza returns the only portion this CLI orders.
func WholePizza() Portion {
	return Portion{"1/1": "1"}
}

func toppingCodes() map[string]string {
	return map[string]string{
		// meats
		"cheese":             "C",
		"pepperoni":          "P",
		"brooklyn pepperoni": "Xp",
		"sausage":            "S",
		"beef":               "B",
		"ham":                "H",
		"bacon":              "K",
		"salami":             "L",
		"chicken":            "D",
		"philly steak":       "St",
		"anchovy":            "A",

		// non-meats
		"cheddar/mozza":    "Cm",
		"feta":             "Fe",
		"provolone":        "Cp",
		"banana peppers":   "Z",
		"black olives":     "R",
		"green olives":     "V",
		"green peppers":    "G",
		"mushroom":         "M",
		"pineapple":        "N",
		"onion":            "O",
		"tomatoes":         "T",
		"jalapeno peppers": "J",
	}
}

// ToppingCode looks up the option code for a topping name after trimming
// surrounding whitespace. ok is false for names outside the catalogue.
func ToppingCode(name string) (code string, ok bool) {
	code, ok = toppingCodes()[strings.TrimSpace(name)]
	return code, ok
}

// ToppingNames lists every recognised topping name in alphabetical order.
func ToppingNames() []string {
	codes := toppingCodes()
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Options builds the "Options" object of a line item. Unknown names are dropped;
// a name listed twice yields a single entry.
func Options(toppings []string) map[string]Portion {
	options := make(map[string]Portion, len(toppings))
	for _, name := range toppings {
		if code, ok := ToppingCode(name); ok {
			options[code] = WholePizza()
		}
	}
	return options
}
