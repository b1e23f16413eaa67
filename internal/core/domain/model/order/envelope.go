package order

import (
	"pizzaorder/internal/core/domain/model/kernel"
)

// Protocol defaults carried by every order.
const (
	LanguageCode          = "en"
	OrderChannel          = "OLO"
	OrderMethod           = "Web"
	ServiceMethod         = "Delivery"
	SourceOrganizationURI = "order.dominos.ca"
	Version               = "1.0"
)

// Envelope is the request body of every order endpoint.
type Envelope struct {
	Order Document `json:"Order"`
}

// Document is the order record in the remote protocol's field names. Fields that
// are unset still appear: identifiers as null, collections as empty.
type Document struct {
	Address               kernel.Address `json:"Address"`
	Amounts               Amounts        `json:"Amounts,omitempty"`
	Coupons               []any          `json:"Coupons"`
	CustomerID            string         `json:"CustomerID"`
	Email                 string         `json:"Email"`
	Extension             string         `json:"Extension"`
	FirstName             string         `json:"FirstName"`
	LastName              string         `json:"LastName"`
	LanguageCode          string         `json:"LanguageCode"`
	OrderChannel          string         `json:"OrderChannel"`
	OrderID               string         `json:"OrderID"`
	OrderMethod           string         `json:"OrderMethod"`
	OrderTaker            *string        `json:"OrderTaker"`
	Payments              []any          `json:"Payments"`
	Phone                 string         `json:"Phone"`
	Products              []Product      `json:"Products"`
	ServiceMethod         string         `json:"ServiceMethod"`
	SourceOrganizationURI string         `json:"SourceOrganizationURI"`
	StoreID               *string        `json:"StoreID"`
	Tags                  map[string]any `json:"Tags"`
	Version               string         `json:"Version"`
	NoCombine             bool           `json:"NoCombine"`
	Partners              map[string]any `json:"Partners"`
}

// Envelope renders the full order document. Each call builds fresh collections,
// so the result can be encoded or modified without touching the order.
func (o *Order) Envelope() Envelope {
	var storeID *string
	if o.storeID != "" {
		id := o.storeID
		storeID = &id
	}

	return Envelope{Order: Document{
		Address:               o.address,
		Amounts:               o.amounts.clone(),
		Coupons:               []any{},
		CustomerID:            "",
		Email:                 o.customer.Email,
		Extension:             "",
		FirstName:             o.customer.FirstName,
		LastName:              o.customer.LastName,
		LanguageCode:          LanguageCode,
		OrderChannel:          OrderChannel,
		OrderID:               "",
		OrderMethod:           OrderMethod,
		OrderTaker:            nil,
		Payments:              []any{},
		Phone:                 o.customer.Phone,
		Products:              o.Products(),
		ServiceMethod:         ServiceMethod,
		SourceOrganizationURI: SourceOrganizationURI,
		StoreID:               storeID,
		Tags:                  map[string]any{},
		Version:               Version,
		NoCombine:             true,
		Partners:              map[string]any{},
	}}
}
