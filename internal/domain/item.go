package domain

import (
	"context"
	"time"
)

// Item is an inventory item tracked for resale. Tags are stored as a JSON
// array column and unmarshalled on read.
type Item struct {
	ID        string
	Title     string
	Category  string
	Condition string
	Source    string
	Cost      float64
	Price     float64
	Tags      []string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemRepository is the persistence port for inventory items.
type ItemRepository interface {
	List(ctx context.Context, limit int) ([]Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, item *Item) (*Item, error)
}
