package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Reconciler applies the date-driven rental transitions as of now
type Reconciler interface {
	ReconcileStatuses(ctx context.Context, now time.Time) (started, completed int64, err error)
}

// Scheduler runs the rental status reconciliation on a cron spec
type Scheduler struct {
	cron       *cron.Cron
	reconciler Reconciler
	timeout    time.Duration
	now        func() time.Time
}

// NewScheduler registers the reconciliation job under spec, a standard
// five-field cron expression evaluated in UTC.
func NewScheduler(reconciler Reconciler, spec string) (*Scheduler, error) {
	logger := cron.PrintfLogger(log.Default())
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s := &Scheduler{
		cron:       c,
		reconciler: reconciler,
		timeout:    5 * time.Minute,
		now:        time.Now,
	}
	if _, err := s.cron.AddFunc(spec, s.runReconcile); err != nil {
		return nil, fmt.Errorf("failed to register reconcile job %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) runReconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, _, err := s.Reconcile(ctx); err != nil {
		log.Printf("ERROR: job=reconcile_rentals err=%v", err)
	}
}

// Reconcile runs the job once
func (s *Scheduler) Reconcile(ctx context.Context) (started, completed int64, err error) {
	begin := s.now()
	started, completed, err = s.reconciler.ReconcileStatuses(ctx, begin)
	if err != nil {
		return started, completed, err
	}
	log.Printf("job=reconcile_rentals started=%d completed=%d duration=%s", started, completed, time.Since(begin))
	return started, completed, nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	log.Println("Starting reconcile scheduler")
	s.cron.Start()
	log.Printf("job=reconcile_rentals next_run=%s", s.Next().Format(time.RFC3339))
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	log.Println("Stopping reconcile scheduler...")
	<-s.cron.Stop().Done()
	log.Println("Reconcile scheduler stopped")
}

// Next returns when the job runs next. Zero until Start is called.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
