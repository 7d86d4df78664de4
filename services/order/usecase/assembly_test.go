package usecase

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/services/order/mocks"
)

func newTestUC(t *testing.T) (*OrderUC, *mocks.MockOrderGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(mockGW, models.OrderConfig{
		AllowFallback:   true,
		FallbackDelayMs: 1,
		DefaultAddress:  "123 Nguyen Trai, Ha Noi",
	})
	return uc, mockGW, ctrl
}

func testCart() models.Cart {
	cart := models.Cart{}
	cart.Add(models.Product{ID: "product-A", Name: "Phở Bò Tái", VenueID: "venue-2", Price: 10000})
	cart.Add(models.Product{ID: "product-A", Name: "Phở Bò Tái", VenueID: "venue-2", Price: 10000})
	cart.Add(models.Product{ID: "product-B", Name: "Trà Đá", VenueID: "venue-2", Price: 5000})
	return cart
}

func TestBuildOrderRequest_Success(t *testing.T) {
	// Arrange
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	cart := testCart()

	// Act
	req, err := uc.BuildOrderRequest(cart, "venue-2", "customer-1", "456 Le Loi, TP HCM")

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, "customer-1", req.CustomerID)
	assert.Equal(t, "venue-2", req.VenueID)
	assert.Equal(t, "456 Le Loi, TP HCM", req.Address)
	require.Len(t, req.OrderItems, 2)
	assert.Equal(t, int64(25000), req.TotalPrice())

	// Every item carries a fresh correlation id
	seen := map[string]bool{}
	for _, item := range req.OrderItems {
		assert.NotEmpty(t, item.OrderItemID)
		assert.False(t, seen[item.OrderItemID])
		seen[item.OrderItemID] = true
	}

	// Assembly never mutates the cart
	assert.Len(t, cart, 2)
	assert.Equal(t, 2, cart["product-A"].Quantity)
}

func TestBuildOrderRequest_EmptyCart(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	req, err := uc.BuildOrderRequest(models.Cart{}, "venue-2", "customer-1", "")

	assert.ErrorIs(t, err, errs.ErrInvalidCart)
	assert.Nil(t, req)
}

func TestBuildOrderRequest_CrossVenueCartRejected(t *testing.T) {
	// Arrange
	uc, mockGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	cart := testCart()
	cart.Add(models.Product{ID: "product-X", Name: "Bánh Mì Pate", VenueID: "venue-3", Price: 20000})

	// The boundary must never be called for an invalid cart
	mockGW.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)

	// Act
	req, err := uc.BuildOrderRequest(cart, "venue-2", "customer-1", "")

	// Assert
	assert.ErrorIs(t, err, errs.ErrInvalidCart)
	assert.Nil(t, req)
}

func TestBuildOrderRequest_DefaultAddress(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	req, err := uc.BuildOrderRequest(testCart(), "venue-2", "customer-1", "")

	assert.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, "123 Nguyen Trai, Ha Noi", req.Address)
}

func TestCart_QuantityAndTotals(t *testing.T) {
	cart := models.Cart{}
	a := models.Product{ID: "A", Name: "Item A", VenueID: "venue-1", Price: 10000}
	b := models.Product{ID: "B", Name: "Item B", VenueID: "venue-1", Price: 5000}

	cart.Add(a)
	cart.Add(a)
	cart.Add(b)
	assert.Equal(t, int64(25000), cart.TotalPrice())

	// Setting quantity to zero removes the entry entirely
	cart.SetQuantity("B", 0)
	assert.Equal(t, int64(20000), cart.TotalPrice())
	_, exists := cart["B"]
	assert.False(t, exists)

	cart.SetQuantity("A", 5)
	assert.Equal(t, int64(50000), cart.TotalPrice())
}
