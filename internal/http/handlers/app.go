package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"reselleros/internal/ai"
	"reselleros/internal/domain"
	"reselleros/internal/infra"
	"reselleros/internal/research"
)

// Generator is the assistant surface consumed by the HTTP layer. All methods
// degrade internally; none of them error for expected failure modes.
type Generator interface {
	GenerateListingSEO(ctx context.Context, payload ai.Payload) ai.Result
	GeneratePricingInsight(ctx context.Context, payload ai.Payload) ai.Result
	GenerateMarketingCopy(ctx context.Context, payload ai.Payload) ai.Result
}

// Researcher assembles cached research for a topic.
type Researcher interface {
	PerformResearch(ctx context.Context, topic string, sources []string) research.Summary
}

// AIStatus reports on the optional local generation service.
type AIStatus interface {
	Available(ctx context.Context) bool
	ListModels(ctx context.Context) ([]string, error)
}

// App bundles the handler dependencies.
type App struct {
	Logger   infra.Logger
	AI       Generator
	Research Researcher
	Status   AIStatus
	Items    domain.ItemRepository
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}
