package research

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the write side of the snapshot cache, used by out-of-band capture
// tooling. The serving path only ever reads through Cache.
type Store struct {
	dir string
}

// NewStore initializes a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("research: store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("research: ensure store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// SaveSnapshot persists the captured records for a source/topic pair under the
// same key the cache reads from, and returns the file name written. The source
// name must be a plain identifier so keys cannot escape the store root.
func (s *Store) SaveSnapshot(source, topic string, records []Record) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", errors.New("research: source is required")
	}
	if strings.ContainsAny(source, "/\\.") {
		return "", fmt.Errorf("research: invalid source name %q", source)
	}
	if NormalizeTopic(topic) == "" {
		return "", errors.New("research: topic is required")
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("research: encode snapshot: %w", err)
	}
	key := CacheKey(source, topic)
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("research: write snapshot: %w", err)
	}
	return key, nil
}
