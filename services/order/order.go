package order

import (
	"context"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kietsocola/foodorder/services/order OrderUC

// OrderUC represents the order usecase interface
type OrderUC interface {
	// BuildOrderRequest assembles and validates an immutable order
	// request from the cart. Pure: it never mutates the cart.
	BuildOrderRequest(cart models.Cart, venueID, customerID, address string) (*models.OrderRequest, error)

	// SubmitOrder sends the request to the order boundary, falling back
	// to a locally synthesized response when allowed by configuration
	SubmitOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error)
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kietsocola/foodorder/services/order OrderGW

// OrderGW defines the order boundary gateway interface
type OrderGW interface {
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error)
}
