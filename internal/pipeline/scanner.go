package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/kurochkinivan/device_uploader/internal/domain"
)

type Scanner struct {
	log  *slog.Logger
	root string
}

func NewScanner(log *slog.Logger, root string) *Scanner {
	return &Scanner{
		log:  log,
		root: root,
	}
}

func (s *Scanner) Scan(ctx context.Context) ([]domain.WorkUnit, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", domain.ErrRootNotFound, s.root)
		}

		return nil, fmt.Errorf("failed to stat %q: %w", s.root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", domain.ErrRootNotFound, s.root)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", s.root, err)
	}

	var units []domain.WorkUnit
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(s.root, entry.Name())

		if AlreadyProcessed(path) {
			s.log.DebugContext(ctx, "skipping folder, already processed",
				slog.String("folder", entry.Name()),
			)
			continue
		}

		entryInfo, err := entry.Info()
		if err != nil {
			s.log.ErrorContext(ctx, "failed to stat folder, skipping",
				slog.String("folder", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		units = append(units, domain.WorkUnit{
			Name:       entry.Name(),
			Path:       path,
			ModifiedAt: entryInfo.ModTime(),
		})
	}

	// сначала самые свежие папки
	slices.SortStableFunc(units, func(a, b domain.WorkUnit) int {
		return b.ModifiedAt.Compare(a.ModifiedAt)
	})

	s.log.InfoContext(ctx, "scan finished", slog.Int("folders_to_process", len(units)))

	return units, nil
}
