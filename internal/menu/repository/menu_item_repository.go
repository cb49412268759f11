package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"beorn/internal/domain"
	"beorn/internal/errors"
)

type MySQLMenuItemRepository struct {
	db *sql.DB
}

func NewMySQLMenuItemRepository(db *sql.DB) *MySQLMenuItemRepository {
	return &MySQLMenuItemRepository{db: db}
}

// FindByIDsAndRestaurant returns the menu items whose id is in ids AND whose
// restaurantId matches. Items of other restaurants are filtered out by the
// query itself, so a shorter result than ids signals a mismatch to the caller.
func (r *MySQLMenuItemRepository) FindByIDsAndRestaurant(ctx context.Context, ids []int, restaurantID int) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids)+1)
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}
	args = append(args, restaurantID)

	query := fmt.Sprintf(`
		SELECT id, restaurantId, name, price, isAvailable, createdAt
		FROM MenuItems
		WHERE id IN (%s)
		  AND restaurantId = ?`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

func (r *MySQLMenuItemRepository) FindByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := `
		SELECT id, restaurantId, name, price, isAvailable, createdAt
		FROM MenuItems
		WHERE id = ?
	`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.IsAvailable, &item.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}

func (r *MySQLMenuItemRepository) FindByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	query := `
		SELECT id, restaurantId, name, price, isAvailable, createdAt
		FROM MenuItems
		WHERE restaurantId = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("querying restaurant menu: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

// Update mutates price and/or availability. Nil fields are left untouched.
func (r *MySQLMenuItemRepository) Update(ctx context.Context, id int, price *decimal.Decimal, isAvailable *bool) error {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *price)
	}
	if isAvailable != nil {
		sets = append(sets, "isAvailable = ?")
		args = append(args, *isAvailable)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE MenuItems SET %s WHERE id = ?`, strings.Join(sets, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Distinguish "absent" from "values already equal".
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// TopOrdered returns the limit most ordered menu items across all
// restaurants, ranked by total quantity.
func (r *MySQLMenuItemRepository) TopOrdered(ctx context.Context, limit int) ([]domain.TopMenuItem, error) {
	query := `
		SELECT m.id, m.name, m.price, r.name, SUM(oi.quantity) AS totalOrdered
		FROM OrderItems oi
		JOIN MenuItems m ON m.id = oi.menuItemId
		JOIN Restaurants r ON r.id = m.restaurantId
		GROUP BY m.id, m.name, m.price, r.name
		ORDER BY totalOrdered DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top menu items: %w", err)
	}
	defer rows.Close()

	var top []domain.TopMenuItem
	for rows.Next() {
		var t domain.TopMenuItem
		if err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.Restaurant, &t.TotalOrdered); err != nil {
			return nil, fmt.Errorf("scanning top menu item row: %w", err)
		}
		top = append(top, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating top menu item rows: %w", err)
	}

	return top, nil
}

func scanMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID, &item.RestaurantID, &item.Name, &item.Price,
			&item.IsAvailable, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return items, nil
}
