package ai

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"reselleros/internal/infra"
)

// Completer issues a single bounded-time generation request. The boolean
// reports whether a completion was obtained; implementations never error.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, bool)
}

// ResultKind distinguishes the two shapes a generation can produce.
type ResultKind string

const (
	// ResultRaw marks free text straight from the model.
	ResultRaw ResultKind = "raw"
	// ResultFallback marks the deterministic structured suggestion.
	ResultFallback ResultKind = "fallback"
)

// Result is the tagged union returned by every generation entry point.
// Callers must branch on Kind: the raw path carries free text with no
// guaranteed structure, while the fallback path carries the task-specific
// record.
type Result struct {
	Kind ResultKind
	Raw  string
	Data map[string]any
}

// MarshalJSON emits {"raw": text} for model output and the structured record
// for the fallback path, matching the wire contract of the assistant API.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Kind == ResultRaw {
		return json.Marshal(map[string]string{"raw": r.Raw})
	}
	return json.Marshal(r.Data)
}

// OrchestratorOptions configures the AI orchestrator.
type OrchestratorOptions struct {
	Client    Completer
	Templates *TemplateStore
	Model     string
	Logger    *infra.Logger
}

// Orchestrator composes the template store, completion client and fallback
// generator into one entry point per task. Every failure path degrades to the
// deterministic fallback, so AI-assisted features stay available with zero
// network or model present.
type Orchestrator struct {
	client    Completer
	templates *TemplateStore
	model     string
	logger    *infra.Logger
}

// NewOrchestrator wires the orchestrator with its collaborators.
func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Orchestrator{
		client:    opts.Client,
		templates: opts.Templates,
		model:     opts.Model,
		logger:    logger,
	}
}

// GenerateListingSEO produces SEO copy for a listing payload.
func (o *Orchestrator) GenerateListingSEO(ctx context.Context, payload Payload) Result {
	return o.generate(ctx, TaskSEO, payload)
}

// GeneratePricingInsight produces a pricing suggestion for an item payload.
func (o *Orchestrator) GeneratePricingInsight(ctx context.Context, payload Payload) Result {
	return o.generate(ctx, TaskPricing, payload)
}

// GenerateMarketingCopy produces a social post for an item payload.
func (o *Orchestrator) GenerateMarketingCopy(ctx context.Context, payload Payload) Result {
	return o.generate(ctx, TaskMarketing, payload)
}

func (o *Orchestrator) generate(ctx context.Context, task Task, payload Payload) Result {
	prompt := composePrompt(o.templates.Load(task), payload)
	if text, ok := o.client.Complete(ctx, o.model, prompt); ok && strings.TrimSpace(text) != "" {
		return Result{Kind: ResultRaw, Raw: text}
	}
	o.logger.Debug().Str("task", string(task)).Msg("ai: using heuristic fallback")
	return Result{Kind: ResultFallback, Data: Fallback(task, payload)}
}

// composePrompt concatenates the task template with a serialized dump of the
// payload. A missing template degrades the prompt to the payload alone.
func composePrompt(template string, payload Payload) string {
	serialized, err := json.Marshal(payload)
	if err != nil {
		serialized = []byte("{}")
	}
	template = strings.TrimSpace(template)
	if template == "" {
		return string(serialized)
	}
	return template + "\n\n" + string(serialized)
}
