package order

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
// Save order + its lines atomically
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, o *Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, student_email, student_name, total, status, created_at, estimated_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, o.ID, o.StudentEmail, o.StudentName, o.Total, string(o.Status), o.CreatedAt, o.EstimatedMinutes)
	if err != nil {
		return err
	}

	for _, item := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, o.ID, item.ItemID, item.Name, item.Price, item.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Fetch one order with its lines
// --------------------------------------------------
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, student_email, student_name, total, status, created_at, estimated_minutes
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if err == pgx.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// --------------------------------------------------
// A student's orders, newest first
// --------------------------------------------------
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]*Order, error) {
	return r.list(ctx, `
		SELECT id, student_email, student_name, total, status, created_at, estimated_minutes
		FROM orders
		WHERE student_email = $1
		ORDER BY created_at DESC
	`, email)
}

// --------------------------------------------------
// Admin board: every order, newest first
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Order, error) {
	return r.list(ctx, `
		SELECT id, student_email, student_name, total, status, created_at, estimated_minutes
		FROM orders
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, o *Order) error {
	rows, err := r.db.Query(ctx, `
		SELECT item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o      Order
		status string
	)
	err := row.Scan(
		&o.ID,
		&o.StudentEmail,
		&o.StudentName,
		&o.Total,
		&status,
		&o.CreatedAt,
		&o.EstimatedMinutes,
	)
	if err != nil {
		return nil, err
	}
	o.Status = Status(status)
	return &o, nil
}
