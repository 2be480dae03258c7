// Package recorder manages the lifecycle of a single audio capture
// session over an injected device capability.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State of the capture session.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StatePaused    State = "paused"
	StateStopped   State = "stopped"
)

// Sink publishes a finished capture and returns a playable URL for it.
type Sink interface {
	Put(data []byte) (string, error)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(data []byte) (string, error)

func (f SinkFunc) Put(data []byte) (string, error) {
	return f(data)
}

// Result is a finished recording: a playable handle plus the raw bytes.
type Result struct {
	URL  string
	Data []byte
}

// Recorder drives one capture session at a time through
// idle -> recording -> (paused <-> recording) -> stopped, with cancel
// reachable from any state. The device is released on every exit path.
type Recorder struct {
	device Device
	sink   Sink

	mu     sync.Mutex
	state  State
	stream Stream
	chunks [][]byte
	done   chan struct{}
}

// New creates a recorder over the given device and sink.
func New(device Device, sink Sink) *Recorder {
	return &Recorder{device: device, sink: sink, state: StateIdle}
}

// State returns the current session state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start acquires the device and begins buffering chunks as they arrive.
// Fails fast with ErrBusy while another session is active, and with
// ErrDeviceUnavailable when the device cannot be acquired.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.state == StateRecording || r.state == StatePaused {
		r.mu.Unlock()
		return ErrBusy
	}
	r.mu.Unlock()

	stream, err := r.device.Open(ctx)
	if err != nil {
		if errors.Is(err, ErrDeviceUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	r.mu.Lock()
	r.stream = stream
	r.chunks = nil
	r.state = StateRecording
	r.done = make(chan struct{})
	go r.drain(stream, r.done)
	r.mu.Unlock()
	return nil
}

// drain buffers incoming chunks until the stream closes. Chunks arriving
// while paused are dropped, matching a paused device producing nothing.
func (r *Recorder) drain(stream Stream, done chan struct{}) {
	defer close(done)
	for chunk := range stream.Chunks() {
		if len(chunk) == 0 {
			continue
		}
		r.mu.Lock()
		if r.state == StateRecording || r.state == StateStopped {
			r.chunks = append(r.chunks, chunk)
		}
		r.mu.Unlock()
	}
}

// Pause suspends buffering. A no-op unless currently recording.
func (r *Recorder) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateRecording {
		r.state = StatePaused
	}
}

// Resume continues buffering. A no-op unless currently paused.
func (r *Recorder) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StatePaused {
		r.state = StateRecording
	}
}

// Stop finalizes the chunk buffer into a single recording, publishes it
// through the sink for a playable URL, releases the device, and
// transitions to stopped. Fails with ErrNoActiveRecording while idle.
func (r *Recorder) Stop(ctx context.Context) (*Result, error) {
	r.mu.Lock()
	if r.state != StateRecording && r.state != StatePaused {
		r.mu.Unlock()
		return nil, ErrNoActiveRecording
	}
	stream := r.stream
	done := r.done
	r.stream = nil
	r.state = StateStopped
	r.mu.Unlock()

	// Closing the stream releases the device and ends the drain loop;
	// chunks already in flight are still collected.
	stream.Close()
	<-done

	r.mu.Lock()
	var size int
	for _, c := range r.chunks {
		size += len(c)
	}
	data := make([]byte, 0, size)
	for _, c := range r.chunks {
		data = append(data, c...)
	}
	r.chunks = nil
	r.mu.Unlock()

	url, err := r.sink.Put(data)
	if err != nil {
		return nil, fmt.Errorf("failed to publish recording: %w", err)
	}
	return &Result{URL: url, Data: data}, nil
}

// Cancel discards buffered chunks and releases the device. Safe to call
// from any state; a no-op while idle.
func (r *Recorder) Cancel() {
	r.mu.Lock()
	stream := r.stream
	done := r.done
	r.stream = nil
	r.state = StateIdle
	r.chunks = nil
	r.mu.Unlock()

	if stream != nil {
		stream.Close()
		<-done
	}
}
