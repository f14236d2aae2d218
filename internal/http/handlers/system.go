package handlers

import (
	"net/http"
)

// SystemAI reports availability of the local generation service and the
// models installed on it. The service being offline is a normal state, so the
// response is always 200.
func (a *App) SystemAI(w http.ResponseWriter, r *http.Request) {
	available := a.Status.Available(r.Context())
	var models []string
	if available {
		if listed, err := a.Status.ListModels(r.Context()); err == nil {
			models = listed
		}
	}
	a.json(w, http.StatusOK, map[string]any{
		"available": available,
		"models":    models,
	})
}
