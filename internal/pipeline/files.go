package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/device_uploader/internal/domain"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
}

func AlreadyProcessed(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.SuccessMarker))

	return err == nil && !info.IsDir()
}

func listMetadataFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if name == domain.SuccessMarker || name == domain.FailedMarker {
			continue
		}

		if filepath.Ext(name) == ".json" {
			files = append(files, name)
		}
	}

	return files, nil
}

func listImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := imageExtensions[ext]; ok {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
