package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"reselleros/internal/ai"
)

// decodePayload accepts an arbitrary JSON object as the generation payload.
// An empty body is tolerated: the fallback rules have defaults for everything.
func decodePayload(r *http.Request) (ai.Payload, error) {
	payload := ai.Payload{}
	if r.Body == nil {
		return payload, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, nil
		}
		return nil, err
	}
	return payload, nil
}

func (a *App) AssistantSEO(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.json(w, http.StatusOK, a.AI.GenerateListingSEO(r.Context(), payload))
}

func (a *App) AssistantPricing(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.json(w, http.StatusOK, a.AI.GeneratePricingInsight(r.Context(), payload))
}

func (a *App) AssistantMarketing(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.json(w, http.StatusOK, a.AI.GenerateMarketingCopy(r.Context(), payload))
}

// AssistantOptimizeTitle runs the rule-based title cleanup. It is always
// offline: no model round-trip is involved.
func (a *App) AssistantOptimizeTitle(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.json(w, http.StatusOK, ai.OptimizeTitle(payload))
}
