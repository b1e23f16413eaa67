// Package kernel holds value objects shared by several aggregates of the pizza
// order domain.
//
// The package includes:
//   - Address: the canonical delivery address returned by the store locator
//
// Value objects are immutable: accessors return copies, so a caller cannot
// change an Order's address by mutating a map it got back.
package kernel
