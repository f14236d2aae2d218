package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type researchRequest struct {
	Topic   string   `json:"topic"`
	Sources []string `json:"sources"`
}

func (a *App) AssistantResearch(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "topic is required")
		return
	}
	a.json(w, http.StatusOK, a.Research.PerformResearch(r.Context(), req.Topic, req.Sources))
}
