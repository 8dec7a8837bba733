package speech

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Speaker voices bot replies. Speak is fire-and-forget: no completion
// callback is consumed and implementations must not block the send path.
type Speaker interface {
	Speak(text, locale string)
}

// Transcriber turns a voice recording into a single final transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// LogSpeaker is the stand-in Speaker used when no synthesis backend is
// wired; it records what would have been spoken.
type LogSpeaker struct {
	logger *zap.Logger
}

// NewLogSpeaker creates a speaker that only logs.
func NewLogSpeaker(logger *zap.Logger) *LogSpeaker {
	return &LogSpeaker{logger: logger}
}

func (s *LogSpeaker) Speak(text, locale string) {
	s.logger.Debug("Speaking reply",
		zap.String("locale", locale),
		zap.Int("length", len(text)),
	)
}
