package fs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hereditas-labs/herd-cli/internal/config"
	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// WorkdirAdapter locates the contracts workspace and scopes the process
// working directory to it. Lookup order: an explicit herd.toml override, then
// ./contracts, then ../contracts relative to the invocation directory.
type WorkdirAdapter struct {
	projectRoot  string
	contractsDir string
	log          *slog.Logger
}

// NewWorkdirAdapter creates a new WorkdirAdapter
func NewWorkdirAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *WorkdirAdapter {
	return &WorkdirAdapter{
		projectRoot:  cfg.ProjectRoot,
		contractsDir: cfg.ContractsDir,
		log:          log.With("component", "Workdir"),
	}
}

// Path returns the absolute contracts workspace directory.
func (w *WorkdirAdapter) Path() (string, error) {
	var candidates []string
	if w.contractsDir != "" {
		candidates = []string{w.resolve(w.contractsDir)}
	} else {
		candidates = []string{
			filepath.Join(w.projectRoot, "contracts"),
			filepath.Join(w.projectRoot, "..", "contracts"),
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Clean(candidate), nil
		}
	}

	return "", &domain.ConfigurationError{
		Reason: fmt.Sprintf("contracts directory not found (looked in %v)", candidates),
	}
}

// Enter changes into the workspace and returns a restore function. The
// caller must run restore on every exit path, including failures.
func (w *WorkdirAdapter) Enter() (func() error, error) {
	dir, err := w.Path()
	if err != nil {
		return nil, err
	}

	original, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to read current directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("failed to enter contracts directory: %w", err)
	}
	w.log.Debug("entered contracts workspace", "dir", dir)

	return func() error {
		if err := os.Chdir(original); err != nil {
			return fmt.Errorf("failed to restore working directory: %w", err)
		}
		return nil
	}, nil
}

func (w *WorkdirAdapter) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(w.projectRoot, dir)
}

var _ usecase.ContractsDir = (*WorkdirAdapter)(nil)
