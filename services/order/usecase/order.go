package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/services/order"
)

// OrderUC implements the order.OrderUC interface
type OrderUC struct {
	gw       order.OrderGW
	cfg      models.OrderConfig
	validate *validator.Validate
}

// NewOrderUC creates a new order use case
func NewOrderUC(gw order.OrderGW, cfg models.OrderConfig) *OrderUC {
	return &OrderUC{
		gw:       gw,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// SubmitOrder posts the order request to the boundary. When the boundary
// fails and fallback is enabled, a locally synthesized response with the
// mock-order- prefix is returned after a fixed simulated delay, so the
// caller can both proceed and tell degraded mode apart from a real
// submission. With fallback disabled the boundary error is returned and
// the cart is left untouched for retry.
func (uc *OrderUC) SubmitOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	resp, err := uc.gw.CreateOrder(ctx, req)
	if err == nil {
		logger.Info("Order created via boundary",
			logger.String("order_id", resp.OrderID),
			logger.Int("items", len(req.OrderItems)))
		return resp, nil
	}

	if !uc.cfg.AllowFallback {
		return nil, fmt.Errorf("%w: %v", errs.ErrOrderSubmissionFailed, err)
	}

	logger.Warn("Order boundary failed, synthesizing fallback response",
		logger.String("venue_id", req.VenueID),
		logger.Err(err))

	select {
	case <-time.After(time.Duration(uc.cfg.FallbackDelayMs) * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &models.OrderResponse{
		OrderID: models.FallbackOrderIDPrefix + uuid.New().String(),
		Status:  "created",
		Message: "Order created successfully (mock)",
	}, nil
}
