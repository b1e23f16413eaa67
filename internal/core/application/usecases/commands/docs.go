// Package commands contains the operations that change remote state.
//
// An ordering session is a PlaceOrderCommand handled by PlaceOrderCommandHandler.
// The handler walks a fixed sequence of stages and talks to the outside world only
// through ports.PizzaAPI and ports.Console, so the whole session can be driven by
// fakes in tests.
package commands
