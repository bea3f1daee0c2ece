// Package session owns the task store for the lifetime of one interactive session.
package session

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"tasklist/internal/config"
	"tasklist/internal/store"
)

// sampleLabels are the labels AddSample draws from.
var sampleLabels = []string{
	"Learn compose",
	"Learn state",
	"Build dynamic UIs",
	"Learn Unidirectional Data Flow",
	"Integrate LiveData",
	"Integrate ViewModel",
	"Remember to savedState!",
	"Build stateless composables",
	"Use state from stateless composables",
}

// Session is the single owner of a Store. Commands reach the store only
// through a Session; the store is discarded when the session is closed.
type Session struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	rng    *rand.Rand

	unsubscribe []func()
}

// New creates a session with an empty store.
// opts are passed through to store.New.
func New(cfg *config.Config, logger *zap.Logger, opts ...store.Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:    cfg,
		logger: logger,
		store:  store.New(opts...),
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
	}
	s.Observe(s.logChange)
	return s
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Logger returns the session logger.
func (s *Session) Logger() *zap.Logger { return s.logger }

// Store returns the session's task store.
func (s *Session) Store() *store.Store { return s.store }

// Observe subscribes fn to store changes for the rest of the session.
// It returns a function that detaches fn early.
func (s *Session) Observe(fn store.Observer) func() {
	unsub := s.store.Subscribe(fn)
	s.unsubscribe = append(s.unsubscribe, unsub)
	return unsub
}

// Close detaches every observer registered through the session.
func (s *Session) Close() {
	for _, unsub := range s.unsubscribe {
		unsub()
	}
	s.unsubscribe = nil
	s.logger.Debug("session closed", zap.Int("count", s.store.Len()))
}

// AddSample adds n tasks with random sample labels and icons.
func (s *Session) AddSample(n int) []store.Task {
	kinds := store.IconKinds()
	added := make([]store.Task, 0, n)
	for range n {
		label := sampleLabels[s.rng.IntN(len(sampleLabels))]
		icon := kinds[s.rng.IntN(len(kinds))]
		added = append(added, s.store.Add(label, icon))
	}
	return added
}

func (s *Session) logChange(snap store.Snapshot) {
	s.logger.Debug("store changed",
		zap.Int("count", len(snap.Tasks)),
		zap.String("editing", string(snap.EditingID)))
}
