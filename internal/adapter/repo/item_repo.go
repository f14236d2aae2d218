package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reselleros/internal/domain"
)

// ItemRepositoryPG implements domain.ItemRepository backed by PostgreSQL.
type ItemRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepositoryPG.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepositoryPG {
	return &ItemRepositoryPG{pool: pool}
}

const itemColumns = `id, title, category, condition, source, cost, price, tags, notes, created_at, updated_at`

// List returns the most recently updated items up to limit.
func (r *ItemRepositoryPG) List(ctx context.Context, limit int) ([]domain.Item, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetByID fetches an item by UUID.
func (r *ItemRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	return scanItem(row)
}

// Create inserts a new item, assigning an ID when none is provided.
func (r *ItemRepositoryPG) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO items (id, title, category, condition, source, cost, price, tags, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING `+itemColumns+`;
`,
		item.ID,
		item.Title,
		item.Category,
		item.Condition,
		item.Source,
		item.Cost,
		item.Price,
		tags,
		item.Notes,
	)
	return scanItem(row)
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item domain.Item
		tags []byte
	)
	if err := row.Scan(&item.ID, &item.Title, &item.Category, &item.Condition, &item.Source,
		&item.Cost, &item.Price, &tags, &item.Notes, &item.CreatedAt, &item.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &item.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	return &item, nil
}
