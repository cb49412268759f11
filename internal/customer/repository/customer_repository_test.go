package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beorn/internal/domain"
	apperrors "beorn/internal/errors"
	"beorn/internal/testutil"
)

func TestCustomerRepository_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLCustomerRepository(db)
	ctx := context.Background()

	t.Run("insert and find", func(t *testing.T) {
		id, err := repo.Insert(ctx, domain.Customer{
			Name:        "Ada Lovelace",
			Email:       "ada@example.com",
			PhoneNumber: "555-0100",
			Address:     "1 Analytical Way",
		})
		require.NoError(t, err)
		require.NotZero(t, id)

		customer, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", customer.Name)
		assert.Equal(t, "ada@example.com", customer.Email)
		assert.Equal(t, "555-0100", customer.PhoneNumber)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := repo.Insert(ctx, domain.Customer{
			Name:        "Ada Impostor",
			Email:       "ada@example.com",
			PhoneNumber: "555-0101",
			Address:     "2 Copycat Rd",
		})
		ce, ok := apperrors.IsConflictError(err)
		require.True(t, ok)
		assert.Contains(t, ce.Message, "ada@example.com")
	})

	t.Run("find by id not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 999999)
		_, ok := apperrors.IsNotFoundError(err)
		assert.True(t, ok)
	})

	t.Run("top by order count", func(t *testing.T) {
		busyID := testutil.InsertCustomer(t, db, "Grace Hopper", "grace@example.com")
		restaurantID := testutil.InsertRestaurant(t, db, "Trattoria")

		for i := 0; i < 3; i++ {
			_, err := db.Exec(
				`INSERT INTO Orders (customerId, restaurantId, totalPrice, status) VALUES (?, ?, '10.00', 'Placed')`,
				busyID, restaurantID,
			)
			require.NoError(t, err)
		}

		top, err := repo.TopByOrderCount(ctx, 5)
		require.NoError(t, err)
		require.NotEmpty(t, top)
		assert.Equal(t, busyID, top[0].ID)
		assert.Equal(t, 3, top[0].OrderCount)
	})
}
