package recorder

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrDeviceUnavailable indicates microphone access was denied or no
	// capture device exists.
	ErrDeviceUnavailable = errors.New("recorder: audio device unavailable")

	// ErrNoActiveRecording indicates an operation that needs a live
	// capture session was called while idle.
	ErrNoActiveRecording = errors.New("recorder: no active recording")

	// ErrBusy indicates a second session was started while one is
	// active. The device is a singleton; acquiring it fails fast
	// instead of queueing.
	ErrBusy = errors.New("recorder: a recording session is already active")

	// ErrChunkBufferFull indicates the capture buffer could not accept
	// another chunk.
	ErrChunkBufferFull = errors.New("recorder: chunk buffer full")
)

// Stream is one open capture session on a device. Chunks are delivered
// push-based over the channel; Close releases the device and closes the
// channel.
type Stream interface {
	Chunks() <-chan []byte
	Close() error
}

// Device is the platform capture capability behind the recorder.
type Device interface {
	Open(ctx context.Context) (Stream, error)
}

// DeviceFunc adapts a function to the Device interface.
type DeviceFunc func(ctx context.Context) (Stream, error)

func (f DeviceFunc) Open(ctx context.Context) (Stream, error) {
	return f(ctx)
}

const chunkBufferSize = 256

// PushDevice is a capture device fed by the caller: each uploaded audio
// chunk is pushed into the open stream. Only one stream can be open at
// a time.
type PushDevice struct {
	mu sync.Mutex
	ch chan []byte
}

// NewPushDevice returns an unopened push device.
func NewPushDevice() *PushDevice {
	return &PushDevice{}
}

// Open acquires the device. It fails when another stream already holds it.
func (d *PushDevice) Open(ctx context.Context) (Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ch != nil {
		return nil, ErrDeviceUnavailable
	}
	d.ch = make(chan []byte, chunkBufferSize)
	return &pushStream{device: d, ch: d.ch}, nil
}

// Push delivers one captured chunk to the open stream.
func (d *PushDevice) Push(chunk []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ch == nil {
		return ErrNoActiveRecording
	}
	buf := make([]byte, len(chunk))
	copy(buf, chunk)
	select {
	case d.ch <- buf:
		return nil
	default:
		return ErrChunkBufferFull
	}
}

func (d *PushDevice) release(ch chan []byte) {
	d.mu.Lock()
	if d.ch == ch {
		d.ch = nil
	}
	d.mu.Unlock()
	close(ch)
}

type pushStream struct {
	device *PushDevice
	ch     chan []byte
	once   sync.Once
}

func (s *pushStream) Chunks() <-chan []byte {
	return s.ch
}

func (s *pushStream) Close() error {
	s.once.Do(func() { s.device.release(s.ch) })
	return nil
}
