// Package order provides the Order aggregate: the single record a session fills
// in step by step and sends to every remote endpoint.
//
// The package includes:
//   - Order: the accumulator with set-once store and address, products, pricing
//     and contact details
//   - Selection and Product: a user's size/topping choice and the line item it
//     becomes on the wire
//   - Amounts and PriceResponse: the pricing breakdown merged back from the
//     remote service
//   - CustomerInfo: validated contact fields
//   - Envelope and Document: the {"Order": {...}} request body
//
// Key business rules:
//   - Store and address must be set before validation, pricing or placement
//   - Products must be non-empty before pricing
//   - The payment total is readable only after pricing
//   - Unrecognised topping names are dropped, unknown sizes are an error
package order
