package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pricepulse/backend/internal/domain"
)

// FileLoader reads daily supplier batches from JSON files named
// data-DD-MM-YYYY.json inside the configured data directory. Each file
// carries a top-level "data" array of raw records.
type FileLoader struct {
	dataDir string
}

// NewFileLoader creates a loader rooted at the given directory.
func NewFileLoader(dataDir string) *FileLoader {
	return &FileLoader{dataDir: dataDir}
}

// LoadDaily loads the batch file for the given date.
func (l *FileLoader) LoadDaily(date time.Time) ([]domain.RawProductRecord, error) {
	filename := fmt.Sprintf("data-%s.json", date.Format("02-01-2006"))
	path := filepath.Join(l.dataDir, filename)

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrBatchFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var payload struct {
		Data []domain.RawProductRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBatchFile, err)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("%w: missing \"data\" key in %s", domain.ErrInvalidBatchFile, path)
	}

	return payload.Data, nil
}
