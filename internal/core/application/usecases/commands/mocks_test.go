package commands_test

import (
	"context"

	"pizzaorder/internal/core/domain/model/order"
	"pizzaorder/internal/core/domain/model/store"
	"pizzaorder/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
)

type MockPizzaAPI struct{ mock.Mock }

func (m *MockPizzaAPI) FindStores(ctx context.Context, query store.Query) (store.Lookup, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(store.Lookup), args.Error(1)
}

func (m *MockPizzaAPI) ValidateOrder(ctx context.Context, envelope order.Envelope) error {
	args := m.Called(ctx, envelope)
	return args.Error(0)
}

func (m *MockPizzaAPI) PriceOrder(ctx context.Context, envelope order.Envelope) (order.PriceResponse, error) {
	args := m.Called(ctx, envelope)
	return args.Get(0).(order.PriceResponse), args.Error(1)
}

func (m *MockPizzaAPI) PlaceOrder(ctx context.Context, envelope order.Envelope) error {
	args := m.Called(ctx, envelope)
	return args.Error(0)
}

func (m *MockPizzaAPI) TrackOrders(ctx context.Context, phone string) ([]tracking.OrderStatus, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.OrderStatus), args.Error(1)
}

type MockConsole struct{ mock.Mock }

func (m *MockConsole) Say(msg string) {
	m.Called(msg)
}

func (m *MockConsole) Warn(msg string) {
	m.Called(msg)
}

func (m *MockConsole) Prompt(label string) (string, error) {
	args := m.Called(label)
	return args.String(0), args.Error(1)
}

func (m *MockConsole) PromptInt(label string) (int, error) {
	args := m.Called(label)
	return args.Int(0), args.Error(1)
}

func (m *MockConsole) Confirm(label string, defaultYes bool) (bool, error) {
	args := m.Called(label, defaultYes)
	return args.Bool(0), args.Error(1)
}
