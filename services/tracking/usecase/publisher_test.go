package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/services/tracking"
	"github.com/kietsocola/foodorder/services/tracking/mocks"
)

type stubHandle struct {
	stopped bool
}

func (h *stubHandle) Stop() { h.stopped = true }

// startPublisher wires a publisher to a mock source and returns the
// captured sample and error callbacks for the test to drive directly
func startPublisher(t *testing.T, ctrl *gomock.Controller, session *Session) (tracking.PositionCallback, tracking.PositionErrorCallback, *stubHandle) {
	t.Helper()

	var (
		onSample tracking.PositionCallback
		onError  tracking.PositionErrorCallback
	)
	handle := &stubHandle{}

	mockSource := mocks.NewMockPositionSource(ctrl)
	mockSource.EXPECT().
		Watch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ tracking.PositionOptions, s tracking.PositionCallback, e tracking.PositionErrorCallback) (tracking.WatchHandle, error) {
			onSample = s
			onError = e
			return handle, nil
		})

	publisher := NewPublisher(mockSource, models.PositionConfig{HighAccuracy: true, TimeoutSeconds: 10})
	got, err := publisher.Start(context.Background(), session)
	require.NoError(t, err)
	require.Same(t, tracking.WatchHandle(handle), got)
	return onSample, onError, handle
}

func TestPublisher_ForwardsSamplesToLiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChannel := mocks.NewMockChannel(ctrl)
	session, _, _ := openLiveSession(t, mockChannel, fastConfig())
	defer session.Close()

	var published []byte
	mockChannel.EXPECT().
		Publish(gomock.Any()).
		DoAndReturn(func(data []byte) error {
			published = data
			return nil
		})

	onSample, _, _ := startPublisher(t, ctrl, session)

	// Act
	onSample(models.Coordinate{Latitude: 10.77, Longitude: 106.69}, time.Now())

	// Assert: the sample went out tagged with the session's order
	assert.Contains(t, string(published), testOrderID)
}

func TestPublisher_DropsOutOfRangeSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Publish expectation: forwarding the bad sample fails the test
	mockChannel := mocks.NewMockChannel(ctrl)
	session, _, _ := openLiveSession(t, mockChannel, fastConfig())
	defer session.Close()

	onSample, _, _ := startPublisher(t, ctrl, session)

	onSample(models.Coordinate{Latitude: 91, Longitude: 106.69}, time.Now())
	onSample(models.Coordinate{Latitude: 10.77, Longitude: -181}, time.Now())
}

func TestPublisher_SourceErrorDoesNotStopWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChannel := mocks.NewMockChannel(ctrl)
	session, _, _ := openLiveSession(t, mockChannel, fastConfig())
	defer session.Close()

	mockChannel.EXPECT().Publish(gomock.Any()).Return(nil)

	onSample, onError, handle := startPublisher(t, ctrl, session)

	// A per-fix error is logged and skipped; later samples still flow
	onError(errs.ErrPositionUnavailable)
	onSample(models.Coordinate{Latitude: 10.77, Longitude: 106.69}, time.Now())
	assert.False(t, handle.stopped)
}

func TestPublisher_StopIsNilSafe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockPositionSource(ctrl)
	publisher := NewPublisher(mockSource, models.PositionConfig{})

	publisher.Stop(nil)

	handle := &stubHandle{}
	publisher.Stop(handle)
	assert.True(t, handle.stopped)
}
