package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleVoice transcribes a voice message and runs it through the normal
// send path with the voice-origin flag set, so the reply is spoken once
// even when the session is muted.
func (h *Handler) handleVoice(c tele.Context) error {
	sess, ok := h.sessions.Get(c.Chat().ID)
	if !ok {
		return c.Send("👋 Welcome! What should I call you?")
	}

	if h.transcriber == nil {
		return c.Send("🎤 Voice input isn't configured.")
	}

	voice := c.Message().Voice
	if voice == nil {
		return nil
	}

	audio, err := h.bot.File(&voice.File)
	if err != nil {
		h.logger.Error("Failed to download voice message", zap.Error(err))
		return c.Send("🎤 Sorry, I couldn't fetch that recording.")
	}
	defer audio.Close()

	transcript, err := h.transcriber.Transcribe(context.Background(), audio)
	if err != nil {
		h.logger.Error("Transcription failed", zap.Error(err))
		return c.Send("🎤 Sorry, I couldn't make that out.")
	}

	_ = c.Notify(tele.Typing)

	return h.deliver(c, h.chat.HandleMessage(context.Background(), sess, transcript, true))
}
