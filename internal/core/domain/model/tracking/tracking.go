// Package tracking describes the progress of placed orders as reported by the
// remote order tracker.
package tracking

import "fmt"

// OrderStatus is one tracked order.
type OrderStatus struct {
	StoreID     string
	OrderID     string
	Description string
	// Status is the tracker's stage name, e.g. "Prep", "Bake", "Out the door".
	Status string
}

func (s OrderStatus) String() string {
	if s.Description == "" {
		return fmt.Sprintf("store %s, order %s: %s", s.StoreID, s.OrderID, s.Status)
	}
	return fmt.Sprintf("store %s, order %s (%s): %s", s.StoreID, s.OrderID, s.Description, s.Status)
}
