package order

import (
	"errors"
	"strings"

	"pizzaorder/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CustomerInfo holds the contact fields sent with the order.
type CustomerInfo struct {
	FirstName string `validate:"required,max=64"`
	LastName  string `validate:"required,max=64"`
	Phone     string `validate:"required,numeric,min=7,max=15"`
	Email     string `validate:"required,email"`
}

// NewCustomerInfo trims every field, strips separators from the phone number and
// validates the result.
//
// Example:
//
//	info, err := order.NewCustomerInfo("Ada", "Lovelace", "604-555.0199", "ada@example.com")
//	info.Phone // "6045550199"
func NewCustomerInfo(first, last, phone, email string) (CustomerInfo, error) {
	info := CustomerInfo{
		FirstName: strings.TrimSpace(first),
		LastName:  strings.TrimSpace(last),
		Phone:     NormalizePhone(phone),
		Email:     strings.TrimSpace(email),
	}

	if err := validate.Struct(info); err != nil {
		return CustomerInfo{}, fieldErrors(err)
	}

	return info, nil
}

// NormalizePhone removes spaces, dashes, dots and parentheses.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(" -.()", r) {
			return -1
		}
		return r
	}, phone)
}

func fieldErrors(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errs.NewValueIsInvalidErrorWithCause("customer info", err)
	}

	joined := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Tag() == "required" {
			joined = append(joined, errs.NewValueIsRequiredError(fe.Field()))
			continue
		}
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
			fe.Field(), errors.New("must satisfy '"+fe.Tag()+"'")))
	}
	return errors.Join(joined...)
}
