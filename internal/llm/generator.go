package llm

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the generative backend fails for any
// reason: network, quota, or a malformed/empty response. Callers surface a
// single fixed failure message and do not retry.
var ErrUnavailable = errors.New("generation backend unavailable")

// Generator sends a single prompt to the generative backend and returns the
// produced text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
