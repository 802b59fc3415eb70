package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hereditas-labs/herd-cli/internal/config"
	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// StateStoreAdapter persists deployment results as a flat KEY=VALUE file.
// Upserts are idempotent: an existing line for a key is replaced, unrelated
// lines are preserved byte for byte, and the file is swapped in atomically.
type StateStoreAdapter struct {
	path string
	log  *slog.Logger
}

// NewStateStoreAdapter creates a new StateStoreAdapter
func NewStateStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *StateStoreAdapter {
	return &StateStoreAdapter{
		path: cfg.StateFile,
		log:  log.With("component", "StateStore"),
	}
}

// Path returns the location of the backing file.
func (s *StateStoreAdapter) Path() string {
	return s.path
}

// Load reads the current state in file order. A missing file is empty state.
func (s *StateStoreAdapter) Load(ctx context.Context) ([]domain.StateEntry, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	var entries []domain.StateEntry
	for _, line := range lines {
		if key, value, ok := splitLine(line); ok {
			entries = append(entries, domain.StateEntry{Key: key, Value: value})
		}
	}
	return entries, nil
}

// Upsert removes any existing line per key and appends the new value,
// keeping every unrelated line.
func (s *StateStoreAdapter) Upsert(ctx context.Context, entries []domain.StateEntry) error {
	lines, err := s.readLines()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		kept := lines[:0]
		for _, line := range lines {
			if key, _, ok := splitLine(line); ok && key == entry.Key {
				continue
			}
			kept = append(kept, line)
		}
		lines = append(kept, entry.Key+"="+entry.Value)
		s.log.Debug("state key upserted", "key", entry.Key)
	}

	return s.writeLines(lines)
}

func (s *StateStoreAdapter) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// writeLines replaces the state file via write-to-temporary-then-rename so a
// crash mid-write never leaves a torn file behind.
func (s *StateStoreAdapter) writeLines(lines []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// splitLine parses one KEY=VALUE line; comments and blanks are not entries.
func splitLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, value, ok = strings.Cut(trimmed, "=")
	if !ok || key == "" {
		return "", "", false
	}
	return key, value, true
}

var _ usecase.StateRepository = (*StateStoreAdapter)(nil)
