// Package transcribe defines the speech-to-text capability boundary.
package transcribe

import (
	"context"
	"math/rand"
	"time"
)

// Func converts an audio byte buffer to text. Implementations are
// injected so the mock can be swapped for a real service without
// touching callers.
type Func func(ctx context.Context, audio []byte) (string, error)

const mockDelay = 1500 * time.Millisecond

var mockTranscriptions = []string{
	"I'm feeling much better today compared to yesterday. The morning sickness has finally subsided.",
	"Had a doctor's appointment this morning. Everything looks good, and the baby is growing well!",
	"Just felt the baby kick for the first time! It was such an amazing moment that I'll never forget.",
	"I've been thinking about names lately. I'm having trouble deciding between a few favorites.",
	"Today was a bit challenging with the back pain, but some gentle stretching helped a lot.",
}

// Mock returns a stub transcriber: it waits a fixed simulated delay and
// answers with one pseudo-randomly chosen canned transcription. It only
// fails when the context is cancelled first.
func Mock() Func {
	return func(ctx context.Context, audio []byte) (string, error) {
		select {
		case <-time.After(mockDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		return mockTranscriptions[rand.Intn(len(mockTranscriptions))], nil
	}
}
