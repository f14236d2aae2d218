package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"reselleros/internal/ai"
	"reselleros/internal/domain"
)

func newItemsRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/items/{id}", app.GetItem)
	r.Post("/v1/items", app.CreateItem)
	r.Post("/v1/items/{id}/seo", app.ItemSEO)
	return r
}

func TestItemSEOBuildsPayloadFromStoredItem(t *testing.T) {
	gen := &fakeGenerator{result: ai.Result{Kind: ai.ResultFallback, Data: map[string]any{"title": "x"}}}
	app := &App{
		AI: gen,
		Items: &fakeItems{items: map[string]domain.Item{
			"abc": {
				ID:       "abc",
				Title:    "Red Jacket",
				Category: "Clothing",
				Cost:     12.5,
				Tags:     []string{"vintage"},
			},
		}},
	}
	router := newItemsRouter(app)

	req := httptest.NewRequest(http.MethodPost, "/v1/items/abc/seo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gen.lastPayload["name"] != "Red Jacket" || gen.lastPayload["category"] != "Clothing" {
		t.Fatalf("payload = %#v", gen.lastPayload)
	}
	if gen.lastPayload["cost"] != 12.5 {
		t.Fatalf("payload cost = %v", gen.lastPayload["cost"])
	}
}

func TestItemSEOUnknownItem(t *testing.T) {
	app := &App{AI: &fakeGenerator{}, Items: &fakeItems{}}
	router := newItemsRouter(app)

	req := httptest.NewRequest(http.MethodPost, "/v1/items/missing/seo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateItemValidatesTitle(t *testing.T) {
	app := &App{Items: &fakeItems{}}
	router := newItemsRouter(app)

	req := httptest.NewRequest(http.MethodPost, "/v1/items", strings.NewReader(`{"title":" "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateItemReturnsCreated(t *testing.T) {
	app := &App{Items: &fakeItems{}}
	router := newItemsRouter(app)

	req := httptest.NewRequest(http.MethodPost, "/v1/items",
		strings.NewReader(`{"title":"Red Jacket","cost":12.5,"tags":["vintage"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var body itemResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ID == "" || body.Title != "Red Jacket" {
		t.Fatalf("body = %+v", body)
	}
}
