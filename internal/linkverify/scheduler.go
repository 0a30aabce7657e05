package linkverify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
)

// Scheduler wraps a gocron scheduler running periodic verifications and
// keeps the most recent report.
type Scheduler struct {
	scheduler gocron.Scheduler
	service   *VerificationService
	publisher Publisher
	recorder  metrics.Recorder
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.RWMutex
	last     *Report
	inflight string
}

// NewScheduler creates a scheduler for service. publisher and recorder may be nil.
func NewScheduler(service *VerificationService, publisher Publisher, recorder metrics.Recorder) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:       ctx,
		cancel:    cancel,
		scheduler: s,
		service:   service,
		publisher: publisher,
		recorder:  recorder,
		logger:    service.logger,
	}, nil
}

// Schedule registers a periodic verification and returns the job ID.
func (s *Scheduler) Schedule(interval time.Duration) (string, error) {
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.executeScheduled),
		gocron.WithName("link-verification"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create link verification job: %w", err)
	}
	return job.ID().String(), nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("Starting link verification scheduler")
	s.scheduler.Start()
}

// Stop cancels running verifications, shuts down the scheduler, waits for
// triggered runs and closes the publisher.
func (s *Scheduler) Stop() error {
	s.logger.Info("Stopping link verification scheduler")
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	err := s.scheduler.Shutdown()
	s.wg.Wait()
	if s.publisher != nil {
		if cerr := s.publisher.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *Scheduler) executeScheduled() {
	if _, err := s.Run(s.ctx, ""); err != nil {
		s.logger.Error("Scheduled link verification failed", logfields.Error(err))
	}
}

// Trigger starts a verification in the background and returns its report ID.
// While a triggered run is in flight, Trigger returns that run's ID instead
// of starting another one. It returns "" once the scheduler is stopped.
func (s *Scheduler) Trigger() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight != "" {
		return s.inflight
	}
	if s.ctx.Err() != nil {
		return ""
	}
	id := uuid.NewString()
	s.inflight = id
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			s.inflight = ""
			s.mu.Unlock()
		}()
		if _, err := s.Run(s.ctx, id); err != nil {
			s.logger.Error("Triggered link verification failed", logfields.JobID(id), logfields.Error(err))
		}
	}()
	return id
}

// Run verifies now, records the result and publishes every broken link.
func (s *Scheduler) Run(ctx context.Context, id string) (*Report, error) {
	report, err := s.service.Verify(ctx, id)
	if err != nil {
		return nil, err
	}
	s.recorder.ObserveLinkCheck(report.Duration, len(report.Broken))

	if !s.keep(report) {
		s.logger.Debug("Discarding superseded link verification report", logfields.JobID(report.ID))
	}

	if s.publisher != nil {
		for i := range report.Broken {
			if err := s.publisher.PublishBrokenLink(ctx, &report.Broken[i]); err != nil {
				s.logger.Warn("Failed to publish broken link",
					logfields.JobID(report.ID),
					logfields.URL(report.Broken[i].URL),
					logfields.Error(err))
			}
		}
	}
	return report, nil
}

// keep stores report as the latest unless a run that started later has
// already been stored.
func (s *Scheduler) keep(report *Report) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil && report.StartedAt.Before(s.last.StartedAt) {
		return false
	}
	s.last = report
	return true
}

// Last returns the most recent report.
func (s *Scheduler) Last() (*Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.last != nil
}
