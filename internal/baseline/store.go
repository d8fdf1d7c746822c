// Package baseline persists a point-in-time snapshot of account
// statuses between runs, used only to detect active-to-frozen
// transitions. The snapshot is never authoritative: a missing or
// unreadable file is simply an empty baseline.
package baseline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With("component", "baseline"),
	}
}

// Load reads the previous run's snapshot. Absence or corruption is not
// an error condition; both degrade to "no prior data".
func (s *FileStore) Load() *domain.Baseline {
	empty := &domain.Baseline{Statuses: map[string]domain.StatusLabel{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("baseline unreadable, starting empty", "path", s.path, "error", err)
		}
		return empty
	}

	var b domain.Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		s.logger.Warn("baseline corrupt, starting empty", "path", s.path, "error", err)
		return empty
	}
	if b.Statuses == nil {
		b.Statuses = map[string]domain.StatusLabel{}
	}

	return &b
}

// Save overwrites the snapshot wholesale with the current statuses.
func (s *FileStore) Save(statuses map[string]domain.StatusLabel) error {
	b := domain.Baseline{
		Timestamp: time.Now().UTC(),
		Statuses:  statuses,
	}

	data, err := json.MarshalIndent(&b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal baseline: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write baseline: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace baseline: %w", err)
	}

	return nil
}
