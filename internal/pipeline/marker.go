package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/device_uploader/internal/domain"
)

func WriteOutcome(dir string, outcome *domain.UploadOutcome) error {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	path := filepath.Join(dir, outcome.MarkerName())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write marker file %q: %w", path, err)
	}

	return nil
}
