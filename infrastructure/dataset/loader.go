package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"socialgraph/domain/core/entities"
)

// FileSource loads the raw entity collections from a JSON file. The arrays'
// order in the file is the canonical input order and drives the graph's
// deterministic node-insertion order.
type FileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource creates a file-backed dataset source
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

// Load reads and decodes the dataset file
func (s *FileSource) Load(ctx context.Context) (entities.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("failed to read dataset %s: %w", s.path, err)
	}

	var ds entities.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return entities.Dataset{}, fmt.Errorf("failed to parse dataset %s: %w", s.path, err)
	}

	s.logger.Debug("Dataset loaded",
		zap.String("path", s.path),
		zap.Int("users", len(ds.Users)),
		zap.Int("posts", len(ds.Posts)),
		zap.Int("comments", len(ds.Comments)),
	)

	return ds, nil
}
