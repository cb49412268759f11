package repository

import (
	"context"
	"database/sql"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"

	"beorn/internal/domain"
	"beorn/internal/errors"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

func (r *MySQLCustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	query := `
		SELECT id, name, email, phoneNumber, address, createdAt
		FROM Customers
		WHERE id = ?
	`

	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID, &customer.Name, &customer.Email,
		&customer.PhoneNumber, &customer.Address, &customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by id: %w", err)
	}

	return &customer, nil
}

func (r *MySQLCustomerRepository) Insert(ctx context.Context, customer domain.Customer) (int, error) {
	query := `INSERT INTO Customers (name, email, phoneNumber, address) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		customer.Name, customer.Email, customer.PhoneNumber, customer.Address,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, errors.NewConflictError(fmt.Sprintf("customer with email %s already exists", customer.Email))
		}
		return 0, fmt.Errorf("inserting customer: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}

// TopByOrderCount returns the limit customers who have placed the most orders.
func (r *MySQLCustomerRepository) TopByOrderCount(ctx context.Context, limit int) ([]domain.TopCustomer, error) {
	query := `
		SELECT c.id, c.name, c.email, COUNT(o.id) AS orderCount
		FROM Customers c
		LEFT JOIN Orders o ON o.customerId = c.id
		GROUP BY c.id, c.name, c.email
		ORDER BY orderCount DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top customers: %w", err)
	}
	defer rows.Close()

	var top []domain.TopCustomer
	for rows.Next() {
		var t domain.TopCustomer
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.OrderCount); err != nil {
			return nil, fmt.Errorf("scanning top customer row: %w", err)
		}
		top = append(top, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating top customer rows: %w", err)
	}

	return top, nil
}

func isDuplicateEntry(err error) bool {
	if mysqlErr, ok := err.(*gomysql.MySQLError); ok {
		return mysqlErr.Number == 1062
	}
	return false
}
