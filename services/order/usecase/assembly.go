package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kietsocola/foodorder/internal/pkg/constants"
	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// BuildOrderRequest assembles an immutable order request from the cart.
// Validation happens before anything reaches the boundary: the cart must
// be non-empty, every quantity >= 1, and every product must belong to
// venueID (cross-venue carts are rejected). The cart is never mutated;
// the caller clears it after a confirmed submission.
func (uc *OrderUC) BuildOrderRequest(cart models.Cart, venueID, customerID, address string) (*models.OrderRequest, error) {
	req, err := uc.assembleOrderRequest(cart, venueID, customerID, address)
	if err != nil {
		logger.Warn("Rejecting invalid cart",
			logger.String("error_code", constants.ErrorInvalidCart),
			logger.String("venue_id", venueID),
			logger.Err(err))
		return nil, err
	}
	return req, nil
}

func (uc *OrderUC) assembleOrderRequest(cart models.Cart, venueID, customerID, address string) (*models.OrderRequest, error) {
	if len(cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", errs.ErrInvalidCart)
	}
	if venueID == "" {
		return nil, fmt.Errorf("%w: no venue selected", errs.ErrInvalidCart)
	}

	items := make([]models.OrderItem, 0, len(cart))
	for productID, item := range cart {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %s has quantity %d", errs.ErrInvalidCart, productID, item.Quantity)
		}
		if item.Product.VenueID != venueID {
			return nil, fmt.Errorf("%w: product %s belongs to venue %s, not %s",
				errs.ErrInvalidCart, productID, item.Product.VenueID, venueID)
		}

		items = append(items, models.OrderItem{
			OrderItemID: uuid.New().String(),
			ProductID:   productID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
		})
	}

	if address == "" {
		address = uc.cfg.DefaultAddress
	}

	req := &models.OrderRequest{
		CustomerID: customerID,
		VenueID:    venueID,
		Address:    address,
		OrderItems: items,
	}

	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCart, err)
	}

	return req, nil
}
