package bot

import (
	"context"
	"database/sql"
)

type orderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepo {
	return &orderRepo{db: db}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o *Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, fulfillment, address, payment, change_for, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		o.ID,
		o.CustomerID,
		string(o.Fulfillment),
		o.Address,
		string(o.Payment),
		o.ChangeFor,
		o.CompletedAt,
	)
	return err
}

// NoopOrderRepo discards orders; used when no database is configured.
type NoopOrderRepo struct{}

func (NoopOrderRepo) SaveOrder(context.Context, *Order) error { return nil }
