package queries

import (
	"context"

	"keyvend/internal/pkg/errs"
)

type AccountQueries interface {
	Profile(ctx context.Context, userID string) (*AccountView, error)
	History(ctx context.Context, userID string) ([]HistoryEntry, error)
}

type accountQueriesImpl struct {
	ledger  LedgerReader
	history HistoryReader
}

func NewAccountQueries(ledger LedgerReader, history HistoryReader) AccountQueries {
	return &accountQueriesImpl{ledger: ledger, history: history}
}

func (q *accountQueriesImpl) Profile(ctx context.Context, userID string) (*AccountView, error) {
	acct, err := q.ledger.Get(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return &AccountView{
		UserID:    userID,
		Balance:   acct.Balance(),
		Discount:  acct.Discount(),
		TotalKeys: acct.TotalKeys(),
	}, nil
}

// History returns the user's audit lines oldest-first; an account with no
// activity yields an empty list, not an error.
func (q *accountQueriesImpl) History(ctx context.Context, userID string) ([]HistoryEntry, error) {
	lines, err := q.history.Read(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	entries := make([]HistoryEntry, len(lines))
	for i, line := range lines {
		entries[i] = HistoryEntry{Raw: line}
	}
	return entries, nil
}
