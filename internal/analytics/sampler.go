package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// SampleFunc is one tick of periodic work
type SampleFunc func(ctx context.Context, now time.Time)

// SamplerConfig configures a Sampler
type SamplerConfig struct {
	Interval time.Duration
	Sample   SampleFunc
}

// Validate ensures the sampler can run
func (c *SamplerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Interval <= 0 {
		vb.Fieldf("Interval", "must be positive, got %s", c.Interval)
	}
	if c.Sample == nil {
		vb.RequiredField("Sample")
	}
	return vb.Build()
}

// Sampler runs a function at a fixed interval between Start and Stop
type Sampler struct {
	interval time.Duration
	sample   SampleFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSampler creates a stopped sampler
func NewSampler(cfg *SamplerConfig) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Sampler{interval: cfg.Interval, sample: cfg.Sample}, nil
}

// Start begins sampling until Stop is called or ctx is cancelled
func (s *Sampler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return errors.FailedPrecondition("sampler already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	return nil
}

// Stop cancels sampling and waits for an in-flight sample to finish.
// Stopping a stopped sampler does nothing.
func (s *Sampler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the sampler is started
func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Sampler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sample(ctx, now)
		}
	}
}
