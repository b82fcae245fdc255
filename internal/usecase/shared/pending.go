package shared

import (
	"errors"
	"sync"

	"keyvend/internal/domain/purchase"
	"keyvend/internal/pkg/clock"
	"keyvend/internal/pkg/errs"

	"github.com/google/uuid"
)

// PendingQuotes holds priced-but-unconfirmed purchases in memory. A quote is
// claimed (removed) atomically before execution, so two concurrent confirms
// of the same quote can never both run; a claim rejected for a foreign
// requester leaves the quote untouched.
type PendingQuotes struct {
	mu     sync.Mutex
	quotes map[uuid.UUID]*purchase.Quote
	clock  clock.Clock
}

func NewPendingQuotes(clk clock.Clock) *PendingQuotes {
	return &PendingQuotes{
		quotes: make(map[uuid.UUID]*purchase.Quote),
		clock:  clk,
	}
}

func (s *PendingQuotes) Put(q *purchase.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.quotes[q.ID()] = q
}

// Claim validates that userID may settle the quote and removes it from the
// registry. The caller must either settle the quote or hand it back with
// Restore.
func (s *PendingQuotes) Claim(id uuid.UUID, userID string) (*purchase.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return nil, errs.ErrQuoteNotFound
	}

	if err := q.Claim(userID, s.clock.Now()); err != nil {
		switch {
		case errors.Is(err, purchase.ErrNotRequester):
			return nil, errs.ErrQuoteForbidden
		case errors.Is(err, purchase.ErrQuoteExpired):
			delete(s.quotes, id)
			return nil, errs.ErrQuoteExpired
		default:
			return nil, errs.ErrQuoteNotFound
		}
	}

	delete(s.quotes, id)
	return q, nil
}

// Restore hands back a claimed-but-unsettled quote (e.g. the purchase locks
// were busy) so the requester can confirm again.
func (s *PendingQuotes) Restore(q *purchase.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.IsPending() && !q.HasExpired(s.clock.Now()) {
		s.quotes[q.ID()] = q
	}
}

func (s *PendingQuotes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quotes)
}

func (s *PendingQuotes) sweepLocked() {
	now := s.clock.Now()
	for id, q := range s.quotes {
		if q.HasExpired(now) {
			delete(s.quotes, id)
		}
	}
}
