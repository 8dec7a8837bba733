package handler

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles callback queries that didn't match a registered
// button, dispatching by Unique or data prefix
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Chat().ID),
	)

	switch callback.Unique {
	case "fb_yes":
		return h.handleVoteYes(c)
	case "fb_no":
		return h.handleVoteNo(c)
	case "suggest":
		return h.handleSuggestion(c, data)
	}

	// Dynamic buttons come through with the unique embedded in the data
	if callback.Unique == "" {
		switch {
		case strings.HasPrefix(data, "suggest|"):
			return h.handleSuggestion(c, strings.TrimPrefix(data, "suggest|"))
		case data == "fb_yes":
			return h.handleVoteYes(c)
		case data == "fb_no":
			return h.handleVoteNo(c)
		}
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleVoteYes applies a positive feedback vote
func (h *Handler) handleVoteYes(c tele.Context) error {
	return h.handleVote(c, true)
}

// handleVoteNo applies a negative feedback vote
func (h *Handler) handleVoteNo(c tele.Context) error {
	return h.handleVote(c, false)
}

func (h *Handler) handleVote(c tele.Context, positive bool) error {
	sess, ok := h.sessions.Get(c.Chat().ID)
	if !ok {
		return c.Respond()
	}

	reply := h.chat.HandleFeedback(sess, positive)

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(reply.Text)
}

// handleSuggestion runs a tapped suggestion through the query flow
func (h *Handler) handleSuggestion(c tele.Context, query string) error {
	sess, ok := h.sessions.Get(c.Chat().ID)
	if !ok {
		return c.Respond()
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	_ = c.Notify(tele.Typing)

	return h.deliver(c, h.chat.HandleMessage(context.Background(), sess, query, false))
}
