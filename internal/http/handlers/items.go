package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"reselleros/internal/ai"
	"reselleros/internal/domain"
)

type createItemRequest struct {
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Condition string   `json:"condition"`
	Source    string   `json:"source"`
	Cost      float64  `json:"cost"`
	Price     float64  `json:"price"`
	Tags      []string `json:"tags"`
	Notes     string   `json:"notes"`
}

type itemResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Condition string   `json:"condition"`
	Source    string   `json:"source"`
	Cost      float64  `json:"cost"`
	Price     float64  `json:"price"`
	Tags      []string `json:"tags"`
	Notes     string   `json:"notes"`
}

func toItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:        item.ID,
		Title:     item.Title,
		Category:  item.Category,
		Condition: item.Condition,
		Source:    item.Source,
		Cost:      item.Cost,
		Price:     item.Price,
		Tags:      item.Tags,
		Notes:     item.Notes,
	}
}

func (a *App) ListItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := a.Items.List(r.Context(), limit)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to list items")
		return
	}
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

func (a *App) GetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := a.loadItem(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, toItemResponse(*item))
}

func (a *App) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title is required")
		return
	}
	created, err := a.Items.Create(r.Context(), &domain.Item{
		Title:     req.Title,
		Category:  req.Category,
		Condition: req.Condition,
		Source:    req.Source,
		Cost:      req.Cost,
		Price:     req.Price,
		Tags:      req.Tags,
		Notes:     req.Notes,
	})
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to create item")
		return
	}
	a.json(w, http.StatusCreated, toItemResponse(*created))
}

// ItemSEO generates SEO copy for a stored item.
func (a *App) ItemSEO(w http.ResponseWriter, r *http.Request) {
	item, ok := a.loadItem(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, a.AI.GenerateListingSEO(r.Context(), itemPayload(*item)))
}

// ItemPricing generates a pricing suggestion for a stored item.
func (a *App) ItemPricing(w http.ResponseWriter, r *http.Request) {
	item, ok := a.loadItem(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, a.AI.GeneratePricingInsight(r.Context(), itemPayload(*item)))
}

// ItemMarketing generates a social post for a stored item.
func (a *App) ItemMarketing(w http.ResponseWriter, r *http.Request) {
	item, ok := a.loadItem(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, a.AI.GenerateMarketingCopy(r.Context(), itemPayload(*item)))
}

func (a *App) loadItem(w http.ResponseWriter, r *http.Request) (*domain.Item, bool) {
	id := chi.URLParam(r, "id")
	item, err := a.Items.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "item not found")
		} else {
			a.error(w, http.StatusInternalServerError, "internal", "failed to load item")
		}
		return nil, false
	}
	return item, true
}

// itemPayload flattens a stored item into the loosely-typed generation payload.
func itemPayload(item domain.Item) ai.Payload {
	return ai.Payload{
		"name":      item.Title,
		"category":  item.Category,
		"condition": item.Condition,
		"source":    item.Source,
		"cost":      item.Cost,
		"price":     item.Price,
		"tags":      item.Tags,
		"title":     item.Title,
	}
}
