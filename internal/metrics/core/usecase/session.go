package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"account-analytics-service/internal/metrics/core/domain"
)

// Session keeps a live aggregation for a changing selection. Every Select
// starts a new generation; fetches still running for an older generation are
// cancelled and their results dropped. Each accepted resolution is folded
// immediately, so Snapshot can be rendered while other accounts load.
type Session struct {
	agg      *Aggregator
	keys     []string
	onChange func(Result)

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	passID   string
	window   domain.Window
	order    []string
	outcomes map[string]AccountOutcome
	pending  int
	seq      uint64 // bumped on every accepted resolution, never reset

	// deliver serialises onChange calls; delivered is the seq last handed out.
	deliver   sync.Mutex
	delivered uint64

	wg sync.WaitGroup
}

// NewSession creates a session emitting keys (empty means all categories).
// onChange, if set, is called after accepted fetch resolutions. Calls are
// serialised, only carry the current selection and never go back to an older
// snapshot.
func NewSession(agg *Aggregator, keys []string, onChange func(Result)) *Session {
	return &Session{
		agg:      agg,
		keys:     keys,
		onChange: onChange,
		outcomes: map[string]AccountOutcome{},
	}
}

// Select replaces the account selection and window.
func (s *Session) Select(ctx context.Context, accounts []domain.Account, window domain.Window) {
	fetchable := fetchableAccounts(accounts)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	cctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.passID = uuid.NewString()
	s.window = window
	s.order = make([]string, 0, len(fetchable))
	s.outcomes = make(map[string]AccountOutcome, len(fetchable))
	for _, acc := range fetchable {
		if _, dup := s.outcomes[acc.ID]; dup {
			continue
		}
		s.order = append(s.order, acc.ID)
		s.outcomes[acc.ID] = AccountOutcome{AccountID: acc.ID, State: OutcomePending}
	}
	s.pending = len(s.order)
	passID := s.passID
	ids := append([]string(nil), s.order...)
	s.mu.Unlock()

	for _, id := range ids {
		id := id
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			o := s.agg.fetchOne(cctx, passID, id, window)
			s.resolve(gen, o)
		}()
	}
}

func (s *Session) resolve(gen uint64, o AccountOutcome) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.outcomes[o.AccountID] = o
	s.pending--
	s.seq++
	seq := s.seq
	snap := s.snapshotLocked()
	done := s.pending == 0
	accounts := len(s.order)
	s.mu.Unlock()

	if done {
		s.agg.observer.PassCompleted(snap.PassID, accounts, len(snap.Errors))
	}
	s.emit(gen, seq, snap)
}

// emit hands snap to onChange unless a newer snapshot was already delivered
// or the selection changed since it was taken.
func (s *Session) emit(gen, seq uint64, snap Result) {
	if s.onChange == nil {
		return
	}

	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	current := gen == s.gen
	s.mu.Unlock()
	if !current || seq <= s.delivered {
		return
	}
	s.delivered = seq
	s.onChange(snap)
}

// Snapshot folds the current generation's outcomes.
func (s *Session) Snapshot() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Result {
	outcomes := make([]AccountOutcome, 0, len(s.order))
	for _, id := range s.order {
		outcomes = append(outcomes, s.outcomes[id])
	}
	res := Fold(outcomes, s.keys)
	res.PassID = s.passID
	res.Window = s.window
	return res
}

// Wait blocks until every fetch started by this session has returned.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight fetches. Later resolutions are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	s.mu.Unlock()
}
