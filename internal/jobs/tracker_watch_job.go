package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pizzaorder/internal/core/application/usecases/queries"
	"pizzaorder/internal/core/domain/model/tracking"
	"pizzaorder/internal/core/ports"
	"pizzaorder/internal/pkg/errs"
	"pizzaorder/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CompleteStatus is the tracker's final stage for a delivered order.
const CompleteStatus = "Complete"

// MinWatchInterval is the shortest interval cron's @every schedule honours.
const MinWatchInterval = time.Second

// TrackOrdersHandler is the query handler the job polls.
type TrackOrdersHandler interface {
	Handle(ctx context.Context, query queries.TrackOrdersQuery) ([]tracking.OrderStatus, error)
}

// TrackerWatchJob polls the order tracker and reports each order whose status
// changed since the previous poll.
type TrackerWatchJob struct {
	handler  TrackOrdersHandler
	query    queries.TrackOrdersQuery
	console  ports.Console
	interval time.Duration
	cron     *cron.Cron
	log      logger.Logger

	mu       sync.Mutex
	seen     map[string]string
	finished chan struct{}
	once     sync.Once
}

// NewTrackerWatchJob creates a job polling every interval.
func NewTrackerWatchJob(
	handler TrackOrdersHandler,
	query queries.TrackOrdersQuery,
	console ports.Console,
	interval time.Duration,
	log logger.Logger,
) *TrackerWatchJob {
	return &TrackerWatchJob{
		handler:  handler,
		query:    query,
		console:  console,
		interval: interval,
		cron:     cron.New(),
		log:      log.With("component", "tracker_watch_job"),
		seen:     make(map[string]string),
		finished: make(chan struct{}),
	}
}

// Run polls once right away, then on every tick until all orders are complete
// or ctx is done. An interrupted watch is not an error.
func (j *TrackerWatchJob) Run(ctx context.Context) error {
	if j.interval < MinWatchInterval {
		return errs.NewValueIsOutOfRangeError("watch interval", j.interval, MinWatchInterval, "unbounded")
	}

	done, err := j.Poll(ctx)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	if err = j.Start(ctx); err != nil {
		return err
	}
	defer j.Stop()

	select {
	case <-ctx.Done():
		j.log.Infow("tracker watch interrupted")
	case <-j.finished:
	}
	return nil
}

// Start schedules the poll on the cron runner.
func (j *TrackerWatchJob) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		done, err := j.Poll(ctx)
		if err != nil {
			j.log.Warnw("tracker poll failed", "error", err)
			return
		}
		if done {
			j.once.Do(func() { close(j.finished) })
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Infow("tracker watch started", "interval", j.interval.String())
	return nil
}

// Stop waits for a running poll to return.
func (j *TrackerWatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Infow("tracker watch stopped")
}

// Poll reads the tracker once and prints the orders that are new or changed.
// done is true when there is nothing left to watch.
func (j *TrackerWatchJob) Poll(ctx context.Context) (done bool, err error) {
	statuses, err := j.handler.Handle(ctx, j.query)
	if err != nil {
		return false, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if len(statuses) == 0 {
		if len(j.seen) == 0 {
			j.console.Say("No orders found for " + j.query.Phone())
		}
		return true, nil
	}

	done = true
	for _, s := range statuses {
		if j.seen[s.OrderID] != s.Status {
			j.seen[s.OrderID] = s.Status
			j.console.Say(s.String())
		}
		if s.Status != CompleteStatus {
			done = false
		}
	}

	j.log.Debugw("tracker polled", "orders", len(statuses), "done", done)
	return done, nil
}
