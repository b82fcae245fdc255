package repository

import (
	"context"
	"path/filepath"
	"sync"

	"keyvend/internal/domain/account"
	"keyvend/internal/infra"
	"keyvend/internal/infra/filestore"
	"keyvend/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// storedAccount is the persisted shape of one ledger entry. Balances are kept
// as plain JSON numbers on disk; decimal precision lives in the domain layer.
type storedAccount struct {
	Balance   float64 `json:"balance"`
	Discount  int     `json:"discount"`
	TotalKeys int     `json:"total_keys"`
}

// LedgerRepository stores every account in a single JSON document and
// rewrites the whole document on each update. The mutex serializes all
// read-modify-write cycles; per-user fairness is handled above via keylock.
type LedgerRepository struct {
	path string
	mu   sync.Mutex
}

func NewLedgerRepository(cfg config.StorageConfig) *LedgerRepository {
	return &LedgerRepository{
		path: filepath.Join(cfg.DataDir, "users.json"),
	}
}

// Get returns the stored account, or the zero default when the ledger or the
// entry does not exist. A corrupt or unreadable ledger is an error, never a
// silent default.
func (r *LedgerRepository) Get(_ context.Context, userID string) (account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts, err := r.load()
	if err != nil {
		return account.Account{}, err
	}
	return r.toDomain(userID, accounts)
}

// Update applies fn to the user's account under the ledger lock and persists
// the whole document. The returned account reflects the persisted state.
func (r *LedgerRepository) Update(_ context.Context, userID string, fn func(*account.Account) error) (account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return account.Account{}, err
	}

	acct, err := r.toDomain(userID, accounts)
	if err != nil {
		return account.Account{}, err
	}

	if err := fn(&acct); err != nil {
		return account.Account{}, err
	}

	accounts[userID] = storedAccount{
		Balance:   acct.Balance().InexactFloat64(),
		Discount:  acct.Discount(),
		TotalKeys: acct.TotalKeys(),
	}
	if err := filestore.SaveJSON(r.path, accounts); err != nil {
		return account.Account{}, err
	}
	return acct, nil
}

func (r *LedgerRepository) load() (map[string]storedAccount, error) {
	accounts := make(map[string]storedAccount)
	if _, err := filestore.LoadJSON(r.path, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *LedgerRepository) toDomain(userID string, accounts map[string]storedAccount) (account.Account, error) {
	stored, ok := accounts[userID]
	if !ok {
		return account.New(), nil
	}
	acct, err := account.Reconstruct(decimal.NewFromFloat(stored.Balance), stored.Discount, stored.TotalKeys)
	if err != nil {
		return account.Account{}, infra.WrapRepoErr("invalid ledger entry for "+userID, err, infra.KindCorrupt)
	}
	return acct, nil
}
