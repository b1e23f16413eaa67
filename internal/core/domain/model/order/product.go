package order

import (
	"pizzaorder/internal/core/domain/model/menu"
)

// Selection is one pizza as the user chose it: a size letter and topping names.
type Selection struct {
	Size     string
	Toppings []string
}

// Product is a line item in the order document.
type Product struct {
	Code         string                  `json:"Code"`
	Qty          int                     `json:"Qty"`
	ID           int                     `json:"ID"`
	Instructions string                  `json:"Instructions"`
	IsNew        bool                    `json:"isNew"`
	Options      map[string]menu.Portion `json:"Options"`
}

func newProduct(id int, selection Selection) (Product, error) {
	code, err := menu.SizeCode(selection.Size)
	if err != nil {
		return Product{}, err
	}

	return Product{
		Code:         code,
		Qty:          1,
		ID:           id,
		Instructions: "",
		IsNew:        true,
		Options:      menu.Options(selection.Toppings),
	}, nil
}

func (p Product) clone() Product {
	options := make(map[string]menu.Portion, len(p.Options))
	for code, portion := range p.Options {
		copied := make(menu.Portion, len(portion))
		for part, amount := range portion {
			copied[part] = amount
		}
		options[code] = copied
	}
	p.Options = options
	return p
}
