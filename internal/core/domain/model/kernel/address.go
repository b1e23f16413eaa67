package kernel

import (
	"encoding/json"
	"fmt"

	"pizzaorder/internal/pkg/errs"
	"pizzaorder/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero Address is used where a real one is required.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or decoded from a store locator response")

// Address is the delivery address in the remote service's canonical form.
//
// The store locator normalises what the user typed (street, city, region, postal
// code, unit type and so on) and every later request must echo that object back
// unchanged. Address therefore keeps the whole JSON object instead of a fixed set
// of fields, and exposes typed accessors only for the parts the CLI displays.
//
// The zero value marshals to JSON null.
//
// Example:
//
//	addr, err := kernel.NewAddress(map[string]any{
//	    "Street": "3457 W 1ST AVE", "City": "VANCOUVER",
//	    "Region": "BC", "PostalCode": "V6R1G6",
//	})
//	fmt.Println(addr) // 3457 W 1ST AVE, VANCOUVER, BC V6R1G6
type Address struct { //nolint:recvcheck //UnmarshalJSON needs a pointer receiver
	fields map[string]any
	guard  guard.ConstructorGuard
}

// NewAddress creates an Address from the decoded JSON object. The map is copied.
func NewAddress(fields map[string]any) (Address, error) {
	if len(fields) == 0 {
		return Address{}, errs.NewValueIsRequiredError("address fields")
	}
	return Address{
		fields: copyMap(fields),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsZero reports whether the address has not been set.
func (a Address) IsZero() bool {
	return a.Validate() != nil
}

// Fields returns a copy of the canonical JSON object.
func (a Address) Fields() map[string]any {
	if a.IsZero() {
		return nil
	}
	return copyMap(a.fields)
}

func (a Address) Street() string     { return a.text("Street") }
func (a Address) City() string       { return a.text("City") }
func (a Address) Region() string     { return a.text("Region") }
func (a Address) PostalCode() string { return a.text("PostalCode") }

// String renders the address on one line for console output and logs.
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s %s", a.Street(), a.City(), a.Region(), a.PostalCode())
}

// MarshalJSON writes the canonical object, or null for a zero Address.
func (a Address) MarshalJSON() ([]byte, error) {
	if a.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(a.fields)
}

// UnmarshalJSON accepts an object or null.
func (a *Address) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("address", err)
	}
	if fields == nil {
		*a = Address{}
		return nil
	}
	addr, err := NewAddress(fields)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

func (a Address) text(key string) string {
	if a.IsZero() {
		return ""
	}
	s, _ := a.fields[key].(string)
	return s
}

func copyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = copyValue(v)
	}
	return dst
}

func copyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return copyMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
