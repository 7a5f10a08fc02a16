package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/simaogato/investment-tracker/internal/domain"
)

// Refresher updates market prices and recomputes the portfolio
type Refresher interface {
	RefreshPrices(ctx context.Context) (*domain.Portfolio, error)
}

// PriceRefreshJob periodically refreshes current prices
type PriceRefreshJob struct {
	refresher Refresher
	timeout   time.Duration
}

// NewPriceRefreshJob creates a price refresh job
func NewPriceRefreshJob(refresher Refresher) *PriceRefreshJob {
	return &PriceRefreshJob{
		refresher: refresher,
		timeout:   2 * time.Minute,
	}
}

// Name returns the job name
func (j *PriceRefreshJob) Name() string {
	return "price-refresh"
}

// Run refreshes prices for the full lot list
func (j *PriceRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.refresher.RefreshPrices(ctx); err != nil {
		return fmt.Errorf("price refresh failed: %w", err)
	}
	return nil
}

// RefreshSchedule builds the cron expression for the configured
// auto-refresh interval. The second return value is false when
// auto-refresh is disabled.
func RefreshSchedule(settings domain.Settings) (string, bool) {
	if !settings.AutoRefresh || settings.RefreshInterval <= 0 {
		return "", false
	}
	return fmt.Sprintf("@every %dm", settings.RefreshInterval), true
}

// AutoRefresh manages the single scheduled price refresh entry so the
// schedule follows settings changes at runtime instead of requiring a
// restart
type AutoRefresh struct {
	sched *Scheduler
	job   Job

	mu     sync.Mutex
	entry  cron.EntryID
	active bool
}

// NewAutoRefresh creates an auto-refresh manager
func NewAutoRefresh(sched *Scheduler, job Job) *AutoRefresh {
	return &AutoRefresh{sched: sched, job: job}
}

// Apply re-arms the refresh schedule for the given settings. A prior
// entry is always removed first; when auto-refresh is disabled no new
// entry is registered.
func (a *AutoRefresh) Apply(settings domain.Settings) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active {
		a.sched.Remove(a.entry)
		a.active = false
	}

	schedule, ok := RefreshSchedule(settings)
	if !ok {
		return nil
	}

	id, err := a.sched.AddJob(schedule, a.job)
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	a.entry = id
	a.active = true
	return nil
}
