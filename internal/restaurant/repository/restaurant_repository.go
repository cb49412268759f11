package repository

import (
	"context"
	"database/sql"
	"fmt"

	"beorn/internal/domain"
	"beorn/internal/errors"
)

type MySQLRestaurantRepository struct {
	db *sql.DB
}

func NewMySQLRestaurantRepository(db *sql.DB) *MySQLRestaurantRepository {
	return &MySQLRestaurantRepository{db: db}
}

func (r *MySQLRestaurantRepository) FindByID(ctx context.Context, id int) (*domain.Restaurant, error) {
	query := `SELECT id, name, createdAt FROM Restaurants WHERE id = ?`

	var restaurant domain.Restaurant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("restaurant with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying restaurant by id: %w", err)
	}

	return &restaurant, nil
}

func (r *MySQLRestaurantRepository) Insert(ctx context.Context, restaurant domain.Restaurant) (int, error) {
	query := `INSERT INTO Restaurants (name) VALUES (?)`

	result, err := r.db.ExecContext(ctx, query, restaurant.Name)
	if err != nil {
		return 0, fmt.Errorf("inserting restaurant: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return int(lastInsertID), nil
}
