package recorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder() (*Recorder, *PushDevice) {
	device := NewPushDevice()
	sink := SinkFunc(func(data []byte) (string, error) {
		return "/audio/captures/recording.mp3", nil
	})
	return New(device, sink), device
}

func TestRecordStopProducesPlayableResult(t *testing.T) {
	rec, device := newTestRecorder()
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	assert.Equal(t, StateRecording, rec.State())

	require.NoError(t, device.Push([]byte("chunk-1 ")))
	require.NoError(t, device.Push([]byte("chunk-2 ")))
	require.NoError(t, device.Push([]byte("chunk-3")))

	result, err := rec.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/audio/captures/recording.mp3", result.URL)
	assert.Equal(t, []byte("chunk-1 chunk-2 chunk-3"), result.Data)
	assert.Equal(t, StateStopped, rec.State())

	// The device was released: a new session can start.
	require.NoError(t, rec.Start(ctx))
	rec.Cancel()
}

func TestStartWhileActiveFailsFast(t *testing.T) {
	rec, _ := newTestRecorder()
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	assert.ErrorIs(t, rec.Start(ctx), ErrBusy)

	rec.Pause()
	assert.ErrorIs(t, rec.Start(ctx), ErrBusy)

	rec.Cancel()
}

func TestStopWhileIdleFails(t *testing.T) {
	rec, _ := newTestRecorder()

	_, err := rec.Stop(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveRecording)
}

func TestPauseDropsChunks(t *testing.T) {
	rec, device := newTestRecorder()
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	require.NoError(t, device.Push([]byte("kept")))

	// Let the drain loop buffer the chunk before pausing.
	time.Sleep(50 * time.Millisecond)

	rec.Pause()
	assert.Equal(t, StatePaused, rec.State())
	require.NoError(t, device.Push([]byte("dropped")))

	// Let the drain loop discard the paused chunk before resuming.
	time.Sleep(50 * time.Millisecond)

	rec.Resume()
	assert.Equal(t, StateRecording, rec.State())
	require.NoError(t, device.Push([]byte("also kept")))

	result, err := rec.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("keptalso kept"), result.Data)
}

func TestPauseResumeOutsideSessionAreNoOps(t *testing.T) {
	rec, _ := newTestRecorder()

	rec.Pause()
	assert.Equal(t, StateIdle, rec.State())
	rec.Resume()
	assert.Equal(t, StateIdle, rec.State())
}

func TestCancelReleasesDeviceAndIsIdempotent(t *testing.T) {
	rec, device := newTestRecorder()
	ctx := context.Background()

	require.NoError(t, rec.Start(ctx))
	require.NoError(t, device.Push([]byte("discard me")))

	rec.Cancel()
	assert.Equal(t, StateIdle, rec.State())
	rec.Cancel()

	// Cancelled sessions leave nothing behind for a later stop.
	_, err := rec.Stop(ctx)
	assert.ErrorIs(t, err, ErrNoActiveRecording)

	// And the device is free for the next session.
	require.NoError(t, rec.Start(ctx))
	result, err := rec.Stop(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
}

func TestPushWithoutOpenStream(t *testing.T) {
	device := NewPushDevice()

	assert.ErrorIs(t, device.Push([]byte("early")), ErrNoActiveRecording)
}

func TestPushDeviceSingleStream(t *testing.T) {
	device := NewPushDevice()
	ctx := context.Background()

	stream, err := device.Open(ctx)
	require.NoError(t, err)

	_, err = device.Open(ctx)
	assert.ErrorIs(t, err, ErrDeviceUnavailable)

	require.NoError(t, stream.Close())

	again, err := device.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}
