package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotRequester = errors.New("quote belongs to another user")
	ErrQuoteExpired = errors.New("quote has expired")
	ErrQuoteSettled = errors.New("quote is already settled")
	ErrEmptyUser    = errors.New("user id cannot be empty")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
	StatusExpired   Status = "expired"
	StatusCanceled  Status = "canceled"
)

// Quote is a priced, not-yet-committed purchase proposal. Only the original
// requester may confirm or cancel it, and only a Fulfilled quote ever mutates
// persisted state.
type Quote struct {
	id        uuid.UUID
	userID    string
	product   string
	duration  string
	pricing   Pricing
	status    Status
	createdAt time.Time
	expiresAt time.Time
}

func NewQuote(userID, product, duration string, pricing Pricing, now time.Time, ttl time.Duration) (*Quote, error) {
	if userID == "" {
		return nil, ErrEmptyUser
	}
	return &Quote{
		id:        uuid.New(),
		userID:    userID,
		product:   product,
		duration:  duration,
		pricing:   pricing,
		status:    StatusPending,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func (q *Quote) ID() uuid.UUID        { return q.id }
func (q *Quote) UserID() string       { return q.userID }
func (q *Quote) Product() string      { return q.product }
func (q *Quote) Duration() string     { return q.duration }
func (q *Quote) Pricing() Pricing     { return q.pricing }
func (q *Quote) Status() Status       { return q.status }
func (q *Quote) CreatedAt() time.Time { return q.createdAt }
func (q *Quote) ExpiresAt() time.Time { return q.expiresAt }

func (q *Quote) IsPending() bool { return q.status == StatusPending }

func (q *Quote) HasExpired(now time.Time) bool {
	return now.After(q.expiresAt)
}

// Claim validates a confirm/cancel action against the quote without settling
// it: wrong requester and expiry are checked in that order, so a foreign
// confirmation never consumes the quote.
func (q *Quote) Claim(userID string, now time.Time) error {
	if !q.IsPending() {
		return ErrQuoteSettled
	}
	if q.userID != userID {
		return ErrNotRequester
	}
	if q.HasExpired(now) {
		q.status = StatusExpired
		return ErrQuoteExpired
	}
	return nil
}

func (q *Quote) MarkFulfilled() { q.status = StatusFulfilled }
func (q *Quote) MarkRejected()  { q.status = StatusRejected }
func (q *Quote) MarkCanceled()  { q.status = StatusCanceled }
