package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kietsocola/foodorder/internal/pkg/realtime"
	"github.com/kietsocola/foodorder/services/tracking/mocks"
)

// newBlockingChannel builds a mock whose handshake hangs until cancelled,
// keeping the session in connecting mode for the whole test
func newBlockingChannel(ctrl *gomock.Controller) *mocks.MockChannel {
	mockChannel := mocks.NewMockChannel(ctrl)
	mockChannel.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ realtime.EventHandler) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		AnyTimes()
	mockChannel.EXPECT().Close().Return(nil).AnyTimes()
	return mockChannel
}

func TestManager_OpenSupersedesActiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := NewManager(func() (realtime.Channel, error) {
		return newBlockingChannel(ctrl), nil
	}, fastConfig())
	defer manager.Close()

	first, err := manager.Open("order-1")
	require.NoError(t, err)
	require.Same(t, first, manager.Active())

	second, err := manager.Open("order-2")
	require.NoError(t, err)

	// The earlier session is closed, not left running alongside
	assert.Equal(t, StateClosed, first.State())
	assert.Same(t, second, manager.Active())
	assert.Equal(t, "order-2", second.OrderID())
	assert.NotEqual(t, StateClosed, second.State())
}

func TestManager_OpenRequiresOrderID(t *testing.T) {
	manager := NewManager(func() (realtime.Channel, error) {
		return nil, errors.New("factory must not be called")
	}, fastConfig())

	_, err := manager.Open("")
	require.Error(t, err)
	assert.Nil(t, manager.Active())
}

func TestManager_OpenChannelFactoryFailure(t *testing.T) {
	manager := NewManager(func() (realtime.Channel, error) {
		return nil, errors.New("unknown realtime transport")
	}, fastConfig())

	_, err := manager.Open("order-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build realtime channel")
}

func TestManager_CloseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := NewManager(func() (realtime.Channel, error) {
		return newBlockingChannel(ctrl), nil
	}, fastConfig())

	session, err := manager.Open("order-1")
	require.NoError(t, err)

	manager.Close()
	manager.Close()

	assert.Nil(t, manager.Active())
	require.Eventually(t, func() bool {
		return session.State() == StateClosed
	}, time.Second, time.Millisecond)
}
