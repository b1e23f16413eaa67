package store

import (
	"strings"

	"pizzaorder/internal/core/domain/model/kernel"
	"pizzaorder/internal/pkg/errs"
)

// Store is one fulfilment location from a locator reply.
type Store struct {
	id          string
	description string
	onlineNow   *bool
}

// NewStore builds a Store. onlineNow is nil when the locator did not report it.
func NewStore(id, addressDescription string, onlineNow *bool) (Store, error) {
	if strings.TrimSpace(id) == "" {
		return Store{}, errs.NewValueIsRequiredError("store id")
	}
	return Store{id: id, description: addressDescription, onlineNow: onlineNow}, nil
}

// ID is the identifier later sent as the order's StoreID.
func (s Store) ID() string {
	return s.id
}

// AddressDescription is the locator's human readable, newline delimited address.
func (s Store) AddressDescription() string {
	return s.description
}

// Summary is the first line of the address description, used in the store list.
func (s Store) Summary() string {
	line, _, _ := strings.Cut(s.description, "\n")
	return strings.TrimSpace(line)
}

// IsAvailable is false only when the locator explicitly reported the store offline.
func (s Store) IsAvailable() bool {
	return s.onlineNow == nil || *s.onlineNow
}

// Lookup is a decoded store-locator reply.
type Lookup struct {
	Address kernel.Address
	Stores  []Store
}

// Available returns the stores that can take an order right now, in locator order.
func (l Lookup) Available() []Store {
	stores := make([]Store, 0, len(l.Stores))
	for _, s := range l.Stores {
		if s.IsAvailable() {
			stores = append(stores, s)
		}
	}
	return stores
}
