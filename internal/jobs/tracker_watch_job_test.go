package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizzaorder/internal/core/application/usecases/queries"
	"pizzaorder/internal/core/domain/model/tracking"
	"pizzaorder/internal/jobs"
	"pizzaorder/internal/pkg/errs"
	"pizzaorder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrackOrdersHandler struct{ mock.Mock }

func (m *MockTrackOrdersHandler) Handle(ctx context.Context, query queries.TrackOrdersQuery) ([]tracking.OrderStatus, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.OrderStatus), args.Error(1)
}

type MockConsole struct{ mock.Mock }

func (m *MockConsole) Say(msg string)  { m.Called(msg) }
func (m *MockConsole) Warn(msg string) { m.Called(msg) }

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

func trackQuery(t *testing.T) queries.TrackOrdersQuery {
	t.Helper()
	q, err := queries.NewTrackOrdersQuery("6045550199")
	require.NoError(t, err)
	return q
}

func status(id, stage string) tracking.OrderStatus {
	return tracking.OrderStatus{StoreID: "10503", OrderID: id, Status: stage}
}

func TestTrackerWatchJob_Poll_ReportsChangesOnly(t *testing.T) {
	ctx := t.Context()
	query := trackQuery(t)

	handler := new(MockTrackOrdersHandler)
	handler.On("Handle", ctx, query).Return([]tracking.OrderStatus{status("#1", "Bake")}, nil).Twice()
	handler.On("Handle", ctx, query).Return([]tracking.OrderStatus{status("#1", "Complete")}, nil).Once()

	console := new(MockConsole)
	console.On("Say", "store 10503, order #1: Bake").Return().Once()
	console.On("Say", "store 10503, order #1: Complete").Return().Once()

	job := jobs.NewTrackerWatchJob(handler, query, console, time.Second, logger.NewNop())

	done, err := job.Poll(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	done, err = job.Poll(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	done, err = job.Poll(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	handler.AssertExpectations(t)
	console.AssertExpectations(t)
}

func TestTrackerWatchJob_Run_CompleteOnFirstPoll(t *testing.T) {
	ctx := t.Context()
	query := trackQuery(t)

	handler := new(MockTrackOrdersHandler)
	handler.On("Handle", ctx, query).Return([]tracking.OrderStatus{status("#1", "Complete")}, nil).Once()
	console := new(MockConsole)
	console.On("Say", mock.Anything).Return()

	err := jobs.NewTrackerWatchJob(handler, query, console, time.Second, logger.NewNop()).Run(ctx)

	require.NoError(t, err)
	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestTrackerWatchJob_Run_NoOrders(t *testing.T) {
	ctx := t.Context()
	query := trackQuery(t)

	handler := new(MockTrackOrdersHandler)
	handler.On("Handle", ctx, query).Return([]tracking.OrderStatus{}, nil).Once()
	console := new(MockConsole)
	console.On("Say", "No orders found for 6045550199").Return().Once()

	err := jobs.NewTrackerWatchJob(handler, query, console, time.Second, logger.NewNop()).Run(ctx)

	require.NoError(t, err)
	console.AssertExpectations(t)
}

func TestTrackerWatchJob_Run_FirstPollError(t *testing.T) {
	ctx := t.Context()
	query := trackQuery(t)
	remoteErr := errors.New("tracker unreachable")

	handler := new(MockTrackOrdersHandler)
	handler.On("Handle", ctx, query).Return(nil, remoteErr).Once()

	err := jobs.NewTrackerWatchJob(handler, query, new(MockConsole), time.Second, logger.NewNop()).Run(ctx)

	require.ErrorIs(t, err, remoteErr)
}

func TestTrackerWatchJob_Run_UntilComplete(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()
	query := trackQuery(t)

	handler := new(MockTrackOrdersHandler)
	handler.On("Handle", ctx, query).Return([]tracking.OrderStatus{status("#1", "Out the door")}, nil).Once()
	handler.On("Handle", ctx, query).Return([]tracking.OrderStatus{status("#1", "Complete")}, nil)
	console := new(MockConsole)
	console.On("Say", mock.Anything).Return()

	err := jobs.NewTrackerWatchJob(handler, query, console, time.Second, logger.NewNop()).Run(ctx)

	require.NoError(t, err)
	require.NoError(t, ctx.Err())
	console.AssertCalled(t, "Say", "store 10503, order #1: Complete")
}

func TestTrackerWatchJob_Run_IntervalTooShort(t *testing.T) {
	handler := new(MockTrackOrdersHandler)

	err := jobs.NewTrackerWatchJob(handler, trackQuery(t), new(MockConsole), 10*time.Millisecond, logger.NewNop()).
		Run(t.Context())

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
