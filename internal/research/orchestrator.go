package research

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"reselleros/internal/ai"
	"reselleros/internal/infra"
)

const (
	noCachedData    = "no cached data"
	offlineSummary  = "Research summary unavailable offline. Review the cached source entries below."
	summaryTitleFmt = "Research summary for %s"
)

// DefaultSources is the baseline spread queried when a caller supplies none.
var DefaultSources = []string{"ebay", "etsy", "terapeak"}

// Summarizer is the slice of the AI orchestrator the research flow depends on.
type Summarizer interface {
	GenerateMarketingCopy(ctx context.Context, payload ai.Payload) ai.Result
}

// Insight is a one-line takeaway per source.
type Insight struct {
	Source    string `json:"source"`
	Highlight string `json:"highlight"`
}

// Summary aggregates the research result for a topic: a synthesized summary,
// per-source insights, and the raw entries preserved for persistence or replay
// by the caller.
type Summary struct {
	Summary  string    `json:"summary"`
	Insights []Insight `json:"insights"`
	Sources  []Entry   `json:"sources"`
}

// Orchestrator fans a topic out across sources, reads the snapshot cache for
// each, and asks the AI orchestrator for a synthesized summary.
type Orchestrator struct {
	cache  *Cache
	ai     Summarizer
	logger *infra.Logger
}

// NewOrchestrator wires the research orchestrator.
func NewOrchestrator(cache *Cache, summarizer Summarizer, logger *infra.Logger) *Orchestrator {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Orchestrator{cache: cache, ai: summarizer, logger: logger}
}

// PerformResearch assembles the combined research result for a topic. An empty
// source list substitutes the default spread so the system always attempts at
// least a baseline pass rather than returning nothing.
func (o *Orchestrator) PerformResearch(ctx context.Context, topic string, sources []string) Summary {
	if len(sources) == 0 {
		sources = DefaultSources
	}

	insights := make([]Insight, 0, len(sources))
	entries := make([]Entry, 0, len(sources))
	for _, source := range sources {
		records := o.cache.Load(source, topic)
		highlight := noCachedData
		if len(records) > 0 {
			if title, ok := records[0]["title"].(string); ok && strings.TrimSpace(title) != "" {
				highlight = title
			}
		}
		insights = append(insights, Insight{Source: source, Highlight: highlight})
		entries = append(entries, Entry{Source: source, Entries: records})
	}

	summary := offlineSummary
	result := o.ai.GenerateMarketingCopy(ctx, ai.Payload{
		"name":  fmt.Sprintf(summaryTitleFmt, topic),
		"price": float64(0),
		"tags":  sources,
	})
	if result.Kind == ai.ResultRaw && strings.TrimSpace(result.Raw) != "" {
		summary = result.Raw
	} else {
		o.logger.Debug().Str("topic", topic).Msg("research: model summary unavailable, using offline summary")
	}

	return Summary{Summary: summary, Insights: insights, Sources: entries}
}
