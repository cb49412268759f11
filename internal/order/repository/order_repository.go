package repository

import (
	"context"
	"database/sql"
	"fmt"

	"beorn/internal/domain"
	"beorn/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert writes the order row inside the given transaction and returns the
// id assigned by the database.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `INSERT INTO Orders (customerId, restaurantId, totalPrice, status) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		order.CustomerID, order.RestaurantID, order.TotalPrice, string(order.Status),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, customerId, restaurantId, totalPrice, status, createdAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.CustomerID, &order.RestaurantID,
		&order.TotalPrice, &order.Status, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) FindByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	query := `
		SELECT id, customerId, restaurantId, totalPrice, status, createdAt
		FROM Orders
		WHERE customerId = ?
		ORDER BY createdAt DESC
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by customer: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.CustomerID, &order.RestaurantID,
			&order.TotalPrice, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus moves the order from one status to another with a
// compare-and-set on the current status, so two concurrent transitions
// cannot both win against the same snapshot.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, from, to domain.OrderStatus) error {
	query := `UPDATE Orders SET status = ? WHERE id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, query, string(to), id, string(from))
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Either the order is gone or its status moved under us.
		current, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return errors.NewConflictError(
			fmt.Sprintf("order %d is no longer %s, now %s", id, from, current.Status),
		)
	}

	return nil
}
