package research

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"reselleros/internal/ai"
)

type fakeSummarizer struct {
	result  ai.Result
	payload ai.Payload
}

func (f *fakeSummarizer) GenerateMarketingCopy(ctx context.Context, payload ai.Payload) ai.Result {
	f.payload = payload
	return f.result
}

func writeSnapshot(t *testing.T, dir, source, topic, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, CacheKey(source, topic)), []byte(body), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
}

func TestPerformResearchUsesRawSummary(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "ebay", "vintage jackets", `[{"title": "Levi's Trucker Jacket"}]`)

	summarizer := &fakeSummarizer{result: ai.Result{Kind: ai.ResultRaw, Raw: "jackets are trending"}}
	o := NewOrchestrator(NewCache(dir, nil), summarizer, nil)

	got := o.PerformResearch(context.Background(), "vintage jackets", []string{"ebay", "etsy"})

	if got.Summary != "jackets are trending" {
		t.Fatalf("Summary = %q", got.Summary)
	}
	if len(got.Insights) != 2 {
		t.Fatalf("len(Insights) = %d, want 2", len(got.Insights))
	}
	if got.Insights[0].Source != "ebay" || got.Insights[0].Highlight != "Levi's Trucker Jacket" {
		t.Fatalf("Insights[0] = %+v", got.Insights[0])
	}
	if got.Insights[1].Source != "etsy" || got.Insights[1].Highlight != "no cached data" {
		t.Fatalf("Insights[1] = %+v", got.Insights[1])
	}
	if len(got.Sources) != 2 || got.Sources[0].Source != "ebay" || len(got.Sources[0].Entries) != 1 {
		t.Fatalf("Sources = %+v", got.Sources)
	}

	if summarizer.payload["name"] != "Research summary for vintage jackets" {
		t.Fatalf("payload name = %v", summarizer.payload["name"])
	}
	tags, _ := summarizer.payload["tags"].([]string)
	if !reflect.DeepEqual(tags, []string{"ebay", "etsy"}) {
		t.Fatalf("payload tags = %#v", tags)
	}
}

func TestPerformResearchOfflineSummary(t *testing.T) {
	summarizer := &fakeSummarizer{result: ai.Result{Kind: ai.ResultFallback, Data: map[string]any{"post": "x"}}}
	o := NewOrchestrator(NewCache(t.TempDir(), nil), summarizer, nil)

	got := o.PerformResearch(context.Background(), "sneakers", []string{"ebay"})
	if got.Summary != "Research summary unavailable offline. Review the cached source entries below." {
		t.Fatalf("Summary = %q", got.Summary)
	}
}

func TestPerformResearchDefaultSources(t *testing.T) {
	summarizer := &fakeSummarizer{result: ai.Result{Kind: ai.ResultFallback}}
	cache := NewCache(t.TempDir(), nil)

	explicit := NewOrchestrator(cache, summarizer, nil).
		PerformResearch(context.Background(), "sneakers", []string{"ebay", "etsy", "terapeak"})
	defaulted := NewOrchestrator(cache, summarizer, nil).
		PerformResearch(context.Background(), "sneakers", nil)

	if !reflect.DeepEqual(explicit, defaulted) {
		t.Fatalf("default sources diverge from explicit list:\nexplicit:  %+v\ndefaulted: %+v", explicit, defaulted)
	}
	if len(defaulted.Insights) != 3 {
		t.Fatalf("len(Insights) = %d, want the three default sources", len(defaulted.Insights))
	}
}

func TestPerformResearchIgnoresUntitledFirstRecord(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "ebay", "sneakers", `[{"price": 20}]`)

	summarizer := &fakeSummarizer{result: ai.Result{Kind: ai.ResultFallback}}
	o := NewOrchestrator(NewCache(dir, nil), summarizer, nil)

	got := o.PerformResearch(context.Background(), "sneakers", []string{"ebay"})
	if got.Insights[0].Highlight != "no cached data" {
		t.Fatalf("Highlight = %q, want marker when first record has no title", got.Insights[0].Highlight)
	}
}
