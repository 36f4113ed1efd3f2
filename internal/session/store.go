// Package session keeps one form controller per visitor in memory.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/goliatone/go-userform/pkg/form"
)

// DefaultTTL is the idle time after which a session is evicted.
const DefaultTTL = 30 * time.Minute

// minSweepInterval bounds how often the janitor wakes up.
const minSweepInterval = time.Second

// Factory creates the controller backing a new session.
type Factory func() *form.Controller

// Recorder observes session counts. *metrics.Metrics satisfies it.
type Recorder interface {
	SessionsChanged(active int)
	SessionsEvicted(n int)
}

type entry struct {
	controller *form.Controller
	lastSeen   time.Time
}

// Store maps session ids to controllers and evicts idle ones.
type Store struct {
	factory  Factory
	clock    clock.WithTicker
	ttl      time.Duration
	logger   *zap.SugaredLogger
	recorder Recorder

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock swaps the clock used for idle tracking and the janitor ticker.
func WithClock(clk clock.WithTicker) Option {
	return func(s *Store) {
		if clk != nil {
			s.clock = clk
		}
	}
}

// WithTTL sets the idle timeout. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder reports session counts to r.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

// NewStore builds an empty store. factory must not be nil.
func NewStore(factory Factory, options ...Option) *Store {
	s := &Store{
		factory:  factory,
		clock:    clock.RealClock{},
		ttl:      DefaultTTL,
		logger:   zap.NewNop().Sugar(),
		sessions: make(map[uuid.UUID]*entry),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Get returns the controller of id and refreshes its idle timer.
func (s *Store) Get(id string) (*form.Controller, bool) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.clock.Now()
	return e.controller, true
}

// Create starts a new session.
func (s *Store) Create() (string, *form.Controller) {
	key := uuid.New()
	controller := s.factory()

	s.mu.Lock()
	s.sessions[key] = &entry{controller: controller, lastSeen: s.clock.Now()}
	active := len(s.sessions)
	s.mu.Unlock()

	s.logger.Debugw("session created", "session", key.String(), "active", active)
	s.report(active, 0)
	return key.String(), controller
}

// Resolve returns the session named by id, creating one when id is unknown.
// created reports whether the returned id differs from the requested one.
func (s *Store) Resolve(id string) (string, *form.Controller, bool) {
	if controller, ok := s.Get(id); ok {
		return id, controller, false
	}
	newID, controller := s.Create()
	return newID, controller, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle for at least the TTL and returns how many were
// removed. Evicted controllers are reset so pending dismiss timers stop.
func (s *Store) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	var evicted []*form.Controller
	for key, e := range s.sessions {
		if now.Sub(e.lastSeen) >= s.ttl {
			evicted = append(evicted, e.controller)
			delete(s.sessions, key)
		}
	}
	active := len(s.sessions)
	s.mu.Unlock()

	for _, controller := range evicted {
		controller.Reset()
	}
	if len(evicted) > 0 {
		s.logger.Infow("sessions evicted", "evicted", len(evicted), "active", active)
		s.report(active, len(evicted))
	}
	return len(evicted)
}

// Run sweeps periodically until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	ticker := s.clock.NewTicker(s.sweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.Sweep()
		}
	}
}

func (s *Store) sweepInterval() time.Duration {
	interval := s.ttl / 2
	if interval < minSweepInterval {
		return minSweepInterval
	}
	return interval
}

func (s *Store) report(active, evicted int) {
	if s.recorder == nil {
		return
	}
	s.recorder.SessionsChanged(active)
	if evicted > 0 {
		s.recorder.SessionsEvicted(evicted)
	}
}
