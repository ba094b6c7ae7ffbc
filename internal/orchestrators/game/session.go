package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/analytics"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// session is the in-memory part of an active play session
type session struct {
	id       string
	metrics  analytics.Session
	samplers []*analytics.Sampler
}

func (s *session) stop() {
	for _, sampler := range s.samplers {
		sampler.Stop()
	}
}

func (o *orchestrator) session(playerID string) *session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessions[playerID]
}

// detach removes and stops a player's session, returning it. Samplers are
// stopped before the caller takes the player lock they also use.
func (o *orchestrator) detach(playerID string) *session {
	o.mu.Lock()
	sess := o.sessions[playerID]
	delete(o.sessions, playerID)
	o.mu.Unlock()

	if sess != nil {
		sess.stop()
	}
	return sess
}

func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	lock := o.sessionLock(input.PlayerID)
	lock.Lock()
	defer lock.Unlock()

	if o.isClosed() {
		return nil, errShuttingDown()
	}

	previous := o.detach(input.PlayerID)
	sess := &session{id: o.idGen.Generate()}

	tx, err := o.transact(ctx, input.PlayerID, txnOptions{create: true}, func(tx *txn) error {
		if previous != nil {
			tx.state.Metrics.Attach(previous.metrics)
		}
		sess.metrics = tx.state.Metrics.StartSession(tx.now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := o.startSamplers(input.PlayerID, sess); err != nil {
		return nil, err
	}

	// Close may have run while the session was being saved; it can no
	// longer see this one, so end it here.
	o.mu.Lock()
	closed := o.closed
	if !closed {
		o.sessions[input.PlayerID] = sess
	}
	o.mu.Unlock()
	if closed {
		sess.stop()
		if _, err := o.finish(ctx, input.PlayerID, sess); err != nil {
			slog.WarnContext(ctx, "Failed to end session started during shutdown", "player_id", input.PlayerID, "error", err)
		}
		return nil, errShuttingDown()
	}

	slog.InfoContext(ctx, "Session started",
		"player_id", input.PlayerID,
		"session_id", sess.id,
		"created", tx.created,
		"resumed", previous != nil)

	return &StartSessionOutput{
		SessionID: sess.id,
		Created:   tx.created,
		State:     o.snapshot(tx),
	}, nil
}

func (o *orchestrator) isClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

func errShuttingDown() error {
	return errors.Unavailable("game service is shutting down")
}

func (o *orchestrator) startSamplers(playerID string, sess *session) error {
	loops := []struct {
		interval time.Duration
		sample   analytics.SampleFunc
	}{
		{o.tickInterval, o.autoCombat(playerID)},
		{o.sampleInterval, o.sampleMetrics(playerID)},
	}

	for _, loop := range loops {
		if loop.interval <= 0 {
			continue
		}
		sampler, err := analytics.NewSampler(&analytics.SamplerConfig{
			Interval: loop.interval,
			Sample:   loop.sample,
		})
		if err != nil {
			sess.stop()
			return err
		}
		if err := sampler.Start(context.Background()); err != nil {
			sess.stop()
			return err
		}
		sess.samplers = append(sess.samplers, sampler)
	}
	return nil
}

// autoCombat deals one tick of auto damage
func (o *orchestrator) autoCombat(playerID string) analytics.SampleFunc {
	return func(ctx context.Context, _ time.Time) {
		_, err := o.transact(ctx, playerID, txnOptions{}, func(tx *txn) error {
			damage := o.derived(tx.state).DPS() * o.tickInterval.Seconds()
			_, err := o.hit(tx, damage)
			return err
		})
		if err != nil {
			slog.WarnContext(ctx, "Auto-combat tick failed", "player_id", playerID, "error", err)
		}
	}
}

// sampleMetrics logs the session's current rates and keeps the daily
// bucket rolled
func (o *orchestrator) sampleMetrics(playerID string) analytics.SampleFunc {
	return func(ctx context.Context, _ time.Time) {
		tx, err := o.transact(ctx, playerID, txnOptions{}, func(*txn) error { return nil })
		if err != nil {
			slog.WarnContext(ctx, "Metrics sample failed", "player_id", playerID, "error", err)
			return
		}
		rates := tx.state.Metrics.Rates(tx.now)
		slog.InfoContext(ctx, "Session sample",
			"player_id", playerID,
			"gold_per_minute", rates.GoldPerMinute,
			"xp_per_minute", rates.XPPerMinute,
			"zones_per_minute", rates.ZonesPerMinute,
			"elapsed", rates.Elapsed)
	}
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.endSession(ctx, input.PlayerID)
}

func (o *orchestrator) endSession(ctx context.Context, playerID string) (*EndSessionOutput, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}

	lock := o.sessionLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess := o.detach(playerID)
	if sess == nil {
		return &EndSessionOutput{}, nil
	}
	return o.finish(ctx, playerID, sess)
}

// finish folds a stopped session into the player's saved metrics
func (o *orchestrator) finish(ctx context.Context, playerID string, sess *session) (*EndSessionOutput, error) {
	var ended bool
	tx, err := o.transact(ctx, playerID, txnOptions{}, func(tx *txn) error {
		tx.state.Metrics.Attach(sess.metrics)
		ended = tx.state.Metrics.EndSession(tx.now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Session ended",
		"player_id", playerID,
		"session_id", sess.id,
		"total_session_time", tx.state.Metrics.TotalSessionTime)

	return &EndSessionOutput{Ended: ended, Metrics: *tx.state.Metrics}, nil
}

// Close ends every active session and refuses new ones
func (o *orchestrator) Close(ctx context.Context) error {
	o.mu.Lock()
	o.closed = true
	players := make([]string, 0, len(o.sessions))
	for id := range o.sessions {
		players = append(players, id)
	}
	o.mu.Unlock()

	var errs []error
	for _, id := range players {
		if _, err := o.endSession(ctx, id); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to end session for player %s", id))
		}
	}
	return errors.Join(errs...)
}
