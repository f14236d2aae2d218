package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reselleros/internal/ai"
	"reselleros/internal/domain"
	"reselleros/internal/research"
)

type fakeGenerator struct {
	lastTask    ai.Task
	lastPayload ai.Payload
	result      ai.Result
}

func (f *fakeGenerator) GenerateListingSEO(ctx context.Context, payload ai.Payload) ai.Result {
	f.lastTask, f.lastPayload = ai.TaskSEO, payload
	return f.result
}

func (f *fakeGenerator) GeneratePricingInsight(ctx context.Context, payload ai.Payload) ai.Result {
	f.lastTask, f.lastPayload = ai.TaskPricing, payload
	return f.result
}

func (f *fakeGenerator) GenerateMarketingCopy(ctx context.Context, payload ai.Payload) ai.Result {
	f.lastTask, f.lastPayload = ai.TaskMarketing, payload
	return f.result
}

type fakeResearcher struct {
	lastTopic   string
	lastSources []string
	summary     research.Summary
}

func (f *fakeResearcher) PerformResearch(ctx context.Context, topic string, sources []string) research.Summary {
	f.lastTopic, f.lastSources = topic, sources
	return f.summary
}

type fakeItems struct {
	items map[string]domain.Item
}

func (f *fakeItems) List(ctx context.Context, limit int) ([]domain.Item, error) {
	var out []domain.Item
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeItems) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	if item, ok := f.items[id]; ok {
		return &item, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeItems) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if f.items == nil {
		f.items = map[string]domain.Item{}
	}
	item.ID = "generated-id"
	f.items[item.ID] = *item
	return item, nil
}

func TestAssistantSEOReturnsRawResult(t *testing.T) {
	gen := &fakeGenerator{result: ai.Result{Kind: ai.ResultRaw, Raw: "model copy"}}
	app := &App{AI: gen}

	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/seo", strings.NewReader(`{"name":"Widget"}`))
	rec := httptest.NewRecorder()
	app.AssistantSEO(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["raw"] != "model copy" {
		t.Fatalf("body = %#v", body)
	}
	if gen.lastPayload["name"] != "Widget" {
		t.Fatalf("payload = %#v", gen.lastPayload)
	}
}

func TestAssistantPricingReturnsFallbackShape(t *testing.T) {
	gen := &fakeGenerator{result: ai.Result{
		Kind: ai.ResultFallback,
		Data: map[string]any{"suggestedPrice": "25.00", "strategy": "markup"},
	}}
	app := &App{AI: gen}

	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/pricing", strings.NewReader(`{"cost":10}`))
	rec := httptest.NewRecorder()
	app.AssistantPricing(rec, req)

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["suggestedPrice"] != "25.00" {
		t.Fatalf("body = %#v", body)
	}
	if _, hasRaw := body["raw"]; hasRaw {
		t.Fatal("fallback response must not carry a raw field")
	}
}

func TestAssistantRejectsInvalidPayload(t *testing.T) {
	app := &App{AI: &fakeGenerator{}}
	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/marketing", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	app.AssistantMarketing(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAssistantResearchRequiresTopic(t *testing.T) {
	app := &App{Research: &fakeResearcher{}}
	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/research", strings.NewReader(`{"topic":"  "}`))
	rec := httptest.NewRecorder()
	app.AssistantResearch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAssistantResearchPassesThrough(t *testing.T) {
	researcher := &fakeResearcher{summary: research.Summary{
		Summary:  "trending",
		Insights: []research.Insight{{Source: "ebay", Highlight: "no cached data"}},
		Sources:  []research.Entry{{Source: "ebay"}},
	}}
	app := &App{Research: researcher}

	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/research",
		strings.NewReader(`{"topic":"sneakers","sources":["ebay"]}`))
	rec := httptest.NewRecorder()
	app.AssistantResearch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if researcher.lastTopic != "sneakers" || len(researcher.lastSources) != 1 {
		t.Fatalf("researcher got topic=%q sources=%#v", researcher.lastTopic, researcher.lastSources)
	}
	var body research.Summary
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Summary != "trending" {
		t.Fatalf("body = %+v", body)
	}
}

func TestAssistantOptimizeTitleIsOffline(t *testing.T) {
	app := &App{}
	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/optimize-title",
		strings.NewReader(`{"title":"red jacket","category":"Clothing"}`))
	rec := httptest.NewRecorder()
	app.AssistantOptimizeTitle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	title, _ := body["suggestedTitle"].(string)
	if !strings.Contains(title, "Clothing") {
		t.Fatalf("suggestedTitle = %q", title)
	}
}
