package handler

import (
	"context"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages. The first text from an unknown chat
// is treated as the login name; everything after that goes through the
// conversation orchestrator.
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess, ok := h.sessions.Get(c.Chat().ID)
	if !ok {
		return h.handleLogin(c, text)
	}

	_ = c.Notify(tele.Typing)

	return h.deliver(c, h.chat.HandleMessage(context.Background(), sess, text, false))
}
