package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"keyvend/internal/infra"
	"keyvend/internal/pkg/clock"
	"keyvend/internal/pkg/config"
)

const historyTimeFormat = "2006-01-02 15:04:05"

// HistoryRepository keeps one append-only text log per user, one
// `[timestamp] message` line per completed action. Entries are never mutated
// or deleted.
type HistoryRepository struct {
	dir   string
	clock clock.Clock
	mu    sync.Mutex
}

func NewHistoryRepository(cfg config.StorageConfig, clk clock.Clock) *HistoryRepository {
	return &HistoryRepository{
		dir:   cfg.LogsDir,
		clock: clk,
	}
}

func (r *HistoryRepository) logPath(userID string) string {
	return filepath.Join(r.dir, "user_"+userID+".txt")
}

func (r *HistoryRepository) Append(_ context.Context, userID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return infra.WrapRepoErr("failed to create logs directory", err)
	}

	path := r.logPath(userID)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return infra.WrapRepoErr("failed to open history log "+path, err)
	}
	defer f.Close()

	line := "[" + r.clock.Now().Format(historyTimeFormat) + "] " + message + "\n"
	if _, err := f.WriteString(line); err != nil {
		return infra.WrapRepoErr("failed to append history log "+path, err)
	}
	return nil
}

// Read returns the user's log lines, oldest first; nil when no history
// exists.
func (r *HistoryRepository) Read(_ context.Context, userID string) ([]string, error) {
	data, err := os.ReadFile(r.logPath(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read history log for "+userID, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
