package research

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"reselleros/internal/infra"
)

// Record is one opaque snapshot entry previously captured for a source/topic
// pair. Entries are immutable once written and read-only at request time.
type Record = map[string]any

// Entry groups the cached records of one source for a topic.
type Entry struct {
	Source  string   `json:"source"`
	Entries []Record `json:"entries"`
}

var topicSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeTopic lower-cases a topic and collapses non-alphanumeric runs into
// single dashes. Distinct topics can normalize to the same key ("Air Jordans"
// vs "air-jordans!!"); that collision is long-standing cache behavior and is
// kept as-is.
func NormalizeTopic(topic string) string {
	normalized := topicSeparators.ReplaceAllString(strings.ToLower(topic), "-")
	return strings.Trim(normalized, "-")
}

// CacheKey derives the snapshot file name for a source/topic pair. It is pure
// and separate from any I/O so the derivation rule stays unit-testable.
func CacheKey(source, topic string) string {
	return source + "-" + NormalizeTopic(topic) + ".json"
}

// Cache reads research snapshots from a directory of JSON files. Absence of a
// snapshot is an expected steady state, and corrupt files are absorbed with a
// diagnostic; neither ever surfaces as a failure to the caller.
type Cache struct {
	dir    string
	logger *infra.Logger
}

// NewCache creates a cache rooted at dir.
func NewCache(dir string, logger *infra.Logger) *Cache {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Cache{dir: dir, logger: logger}
}

// Load returns the cached records for a source/topic pair, or an empty slice
// when nothing was ever captured or the snapshot cannot be parsed.
func (c *Cache) Load(source, topic string) []Record {
	path := filepath.Join(c.dir, CacheKey(source, topic))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn().Err(err).Str("file", path).Msg("research: corrupt snapshot, returning empty set")
		return nil
	}
	return records
}
