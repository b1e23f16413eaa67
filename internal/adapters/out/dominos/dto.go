// Package dominos implements ports.PizzaAPI against the Domino's online ordering
// service: the JSON "power" endpoints for the order flow and the SOAP order
// tracker.
package dominos

import (
	"encoding/xml"

	"pizzaorder/internal/core/domain/model/kernel"
	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/core/domain/model/store"
	"pizzaorder/internal/core/domain/model/tracking"
)

// statusRejected is the Status value the service uses for a failed request.
const statusRejected = -1

type statusItemDTO struct {
	Code    string `json:"Code"`
	Message string `json:"Message,omitempty"`
}

// statusDTO is the envelope shared by the order endpoints' replies.
type statusDTO struct {
	Status      int             `json:"Status"`
	StatusItems []statusItemDTO `json:"StatusItems"`
}

func (s statusDTO) rejected() bool {
	return s.Status == statusRejected
}

func (s statusDTO) codes() []string {
	codes := make([]string, 0, len(s.StatusItems))
	for _, item := range s.StatusItems {
		if item.Code != "" {
			codes = append(codes, item.Code)
		}
	}
	return codes
}

type priceReplyDTO struct {
	statusDTO
	Order order.PricedOrder `json:"Order"`
}

type storeDTO struct {
	StoreID            string `json:"StoreID"`
	AddressDescription string `json:"AddressDescription"`
	IsOnlineNow        *bool  `json:"IsOnlineNow"`
}

type storeLocatorDTO struct {
	Address kernel.Address `json:"Address"`
	Stores  []storeDTO     `json:"Stores"`
}

// toDomain drops nothing: availability filtering belongs to the workflow.
func (d storeLocatorDTO) toDomain() (store.Lookup, error) {
	stores := make([]store.Store, 0, len(d.Stores))
	for _, s := range d.Stores {
		st, err := store.NewStore(s.StoreID, s.AddressDescription, s.IsOnlineNow)
		if err != nil {
			return store.Lookup{}, err
		}
		stores = append(stores, st)
	}
	return store.Lookup{Address: d.Address, Stores: stores}, nil
}

// trackerEnvelopeDTO is the SOAP reply of GetTrackerData.
type trackerEnvelopeDTO struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    struct {
		Response struct {
			Statuses []orderStatusDTO `xml:"OrderStatuses>OrderStatus"`
		} `xml:"GetTrackerDataResponse"`
	} `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

type orderStatusDTO struct {
	StoreID          string `xml:"StoreID"`
	OrderID          string `xml:"OrderID"`
	OrderDescription string `xml:"OrderDescription"`
	OrderStatus      string `xml:"OrderStatus"`
}

func (d trackerEnvelopeDTO) toDomain() []tracking.OrderStatus {
	statuses := make([]tracking.OrderStatus, 0, len(d.Body.Response.Statuses))
	for _, s := range d.Body.Response.Statuses {
		statuses = append(statuses, tracking.OrderStatus{
			StoreID:     s.StoreID,
			OrderID:     s.OrderID,
			Description: s.OrderDescription,
			Status:      s.OrderStatus,
		})
	}
	return statuses
}
