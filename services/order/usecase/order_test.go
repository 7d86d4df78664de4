package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/services/order/mocks"
)

func TestSubmitOrder_Success(t *testing.T) {
	// Arrange
	uc, mockGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	req, err := uc.BuildOrderRequest(testCart(), "venue-2", "customer-1", "")
	require.NoError(t, err)

	mockGW.EXPECT().
		CreateOrder(gomock.Any(), req).
		Return(&models.OrderResponse{OrderID: "order-789", Status: "created"}, nil)

	// Act
	resp, err := uc.SubmitOrder(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "order-789", resp.OrderID)
	assert.False(t, resp.Fallback())
}

func TestSubmitOrder_BoundaryFailureFallsBack(t *testing.T) {
	// Arrange
	uc, mockGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	req, err := uc.BuildOrderRequest(testCart(), "venue-2", "customer-1", "")
	require.NoError(t, err)

	mockGW.EXPECT().
		CreateOrder(gomock.Any(), req).
		Return(nil, errors.New("order request failed: (status: 503)"))

	// Act
	resp, err := uc.SubmitOrder(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Fallback())
	assert.True(t, strings.HasPrefix(resp.OrderID, models.FallbackOrderIDPrefix))
	assert.Equal(t, "created", resp.Status)
}

func TestSubmitOrder_FallbackDisabledReturnsError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(mockGW, models.OrderConfig{AllowFallback: false})

	req, err := uc.BuildOrderRequest(testCart(), "venue-2", "customer-1", "fallback-test address")
	require.NoError(t, err)

	mockGW.EXPECT().
		CreateOrder(gomock.Any(), req).
		Return(nil, errors.New("connection refused"))

	// Act
	resp, err := uc.SubmitOrder(context.Background(), req)

	// Assert
	assert.ErrorIs(t, err, errs.ErrOrderSubmissionFailed)
	assert.Nil(t, resp)
}
