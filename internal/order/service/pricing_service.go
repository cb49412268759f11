package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"beorn/internal/domain"
	"beorn/internal/dto"
	"beorn/internal/errors"
)

type MenuItemRepository interface {
	FindByIDsAndRestaurant(ctx context.Context, ids []int, restaurantID int) ([]domain.MenuItem, error)
}

// PricingService resolves authoritative unit prices for an order request.
// It performs reads only; the price it reports for each line is the one
// visible at resolution time.
type PricingService struct {
	menuItemRepo MenuItemRepository
	logger       *zap.Logger
}

func NewPricingService(menuItemRepo MenuItemRepository, logger *zap.Logger) *PricingService {
	return &PricingService{
		menuItemRepo: menuItemRepo,
		logger:       logger,
	}
}

// ResolvePrices fetches the requested menu items filtered by restaurant and
// computes the exact order total. Resolution is all-or-nothing: if any
// distinct requested id is absent from the filtered set, because the item
// does not exist or belongs to another restaurant, the whole call fails with
// a menu item mismatch and no partial quote is returned.
//
// Availability is deliberately not checked here; an unavailable item still
// prices.
func (s *PricingService) ResolvePrices(ctx context.Context, restaurantID int, items []dto.OrderLineRequest) (*dto.PriceQuote, error) {
	distinct := make([]int, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for _, line := range items {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		distinct = append(distinct, line.MenuItemID)
	}

	found, err := s.menuItemRepo.FindByIDsAndRestaurant(ctx, distinct, restaurantID)
	if err != nil {
		return nil, err
	}

	unitPrices := make(map[int]decimal.Decimal, len(found))
	for _, item := range found {
		unitPrices[item.ID] = item.Price
	}

	if len(unitPrices) != len(distinct) {
		var missing []int
		for _, id := range distinct {
			if _, ok := unitPrices[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Ints(missing)

		s.logger.Warn("menu item mismatch",
			zap.Int("restaurantId", restaurantID),
			zap.Ints("missingIds", missing),
		)
		return nil, errors.NewMenuItemMismatchError(
			"one or more menu items not found or don't belong to the restaurant",
			missing,
		)
	}

	total := decimal.Zero
	for _, line := range items {
		qty := decimal.NewFromInt(int64(line.Quantity))
		total = total.Add(unitPrices[line.MenuItemID].Mul(qty))
	}

	return &dto.PriceQuote{
		Total:      total,
		UnitPrices: unitPrices,
	}, nil
}
