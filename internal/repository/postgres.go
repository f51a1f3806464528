package repository

import (
	"context"
	"fmt"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists carts in the carts/cart_items tables created by the
// embedded migrations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) GetItems(ctx context.Context, token string) ([]domain.LineItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT ci.product_id, ci.name, ci.price_uzs, ci.image, ci.quantity
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE c.token = $1
		ORDER BY ci.position`, token)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var li domain.LineItem
		if err := rows.Scan(&li.ProductID, &li.Name, &li.Price, &li.Image, &li.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart items: %w", err)
	}

	return items, nil
}

func (s *PostgresStore) SaveItems(ctx context.Context, token string, items []domain.LineItem) error {
	if len(items) == 0 {
		return s.DeleteCart(ctx, token)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var cartID string
	err = tx.QueryRow(ctx, `
		INSERT INTO carts (id, token) VALUES ($1, $2)
		ON CONFLICT (token) DO UPDATE SET updated_at = now()
		RETURNING id`, uuid.New().String(), token).Scan(&cartID)
	if err != nil {
		return fmt.Errorf("failed to upsert cart: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	for i, li := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO cart_items (cart_id, product_id, name, price_uzs, image, quantity, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			cartID, li.ProductID, li.Name, li.Price, li.Image, li.Quantity, i)
		if err != nil {
			return fmt.Errorf("failed to insert cart item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cart: %w", err)
	}

	return nil
}

func (s *PostgresStore) DeleteCart(ctx context.Context, token string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM carts WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
