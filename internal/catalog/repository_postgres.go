package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List the full menu in seed order
// --------------------------------------------------
func (r *PostgresRepository) ListItems(ctx context.Context) ([]Item, error) {
	query := `
		SELECT
			id,
			name,
			description,
			price,
			category,
			image_url,
			available,
			prep_time_minutes,
			allergens,
			is_veg
		FROM menu_items
		ORDER BY position ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// --------------------------------------------------
// Fetch one item
// --------------------------------------------------
func (r *PostgresRepository) GetItem(ctx context.Context, id string) (Item, error) {
	query := `
		SELECT
			id,
			name,
			description,
			price,
			category,
			image_url,
			available,
			prep_time_minutes,
			allergens,
			is_veg
		FROM menu_items
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	item, err := scanItem(row)
	if err == pgx.ErrNoRows {
		return Item{}, ErrItemNotFound
	}
	return item, err
}

// --------------------------------------------------
// Admin: toggle availability
// --------------------------------------------------
func (r *PostgresRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET available = $1
		WHERE id = $2
	`, available, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

// --------------------------------------------------
// Admin: replace item photo
// --------------------------------------------------
func (r *PostgresRepository) SetImageURL(ctx context.Context, id string, url string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET image_url = $1
		WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (Item, error) {
	var (
		item     Item
		category string
		tags     []string
	)

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&category,
		&item.ImageURL,
		&item.Available,
		&item.PrepTimeMinutes,
		&tags,
		&item.Veg,
	)
	if err != nil {
		return Item{}, err
	}

	item.Category = Category(category)
	item.Allergens = make([]Allergen, 0, len(tags))
	for _, tag := range tags {
		item.Allergens = append(item.Allergens, Allergen(tag))
	}
	return item, nil
}
