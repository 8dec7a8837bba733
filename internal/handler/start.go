package handler

import (
	"fmt"

	"fixie/internal/domain"
	"fixie/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func greetingFor(name string) string {
	return fmt.Sprintf("Hello %s! I'm Fixie, your AI Troubleshooting Assistant. How can I help you today?", name)
}

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	if sess, ok := h.sessions.Get(chatID); ok {
		return c.Send(greetingFor(sess.UserName), h.suggestionsMarkup())
	}

	// Restore a returning user bound to this chat
	user, err := h.profile.FindByChat(chatID)
	if err != nil {
		h.logger.Error("Failed to look up chat binding", zap.Error(err))
		return c.Send("⚠️ Something went wrong. Try again later.")
	}

	if user == nil {
		return c.Send("👋 Welcome! What should I call you?")
	}

	sess := session.New(chatID, user.Name, user.Points)
	sess.Append(domain.NewText(domain.SenderBot, greetingFor(user.Name)))
	h.sessions.Put(sess)

	return c.Send(greetingFor(user.Name), h.suggestionsMarkup())
}

// handleLogin treats the first text from an unknown chat as the profile name
func (h *Handler) handleLogin(c tele.Context, name string) error {
	chatID := c.Chat().ID

	user, err := h.profile.Login(name, chatID)
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send("⚠️ I couldn't sign you in with that name. Try another one.")
	}

	sess := session.New(chatID, user.Name, user.Points)
	sess.Append(domain.NewText(domain.SenderBot, greetingFor(user.Name)))
	h.sessions.Put(sess)

	h.logger.Info("User logged in",
		zap.Int64("chat_id", chatID),
		zap.String("user", user.Name),
	)

	return c.Send(greetingFor(user.Name), h.suggestionsMarkup())
}

// handleProfile shows the user's points and badge
func (h *Handler) handleProfile(c tele.Context) error {
	sess, ok := h.sessions.Get(c.Chat().ID)
	if !ok {
		return c.Send("👋 Welcome! What should I call you?")
	}

	user, badge, err := h.profile.Profile(sess.UserName)
	if err != nil {
		h.logger.Error("Failed to load profile", zap.Error(err), zap.String("user", sess.UserName))
		return c.Send("⚠️ Something went wrong. Try again later.")
	}
	sess.Points = user.Points

	return c.Send(fmt.Sprintf("👤 %s\n🏅 %s\n⭐ %d points", user.Name, badge, user.Points))
}

// handleMute toggles spoken replies for the session
func (h *Handler) handleMute(c tele.Context) error {
	sess, ok := h.sessions.Get(c.Chat().ID)
	if !ok {
		return c.Send("👋 Welcome! What should I call you?")
	}

	return c.Send(h.chat.ToggleMute(sess).Text)
}

// handleLogout drops the session and its message history
func (h *Handler) handleLogout(c tele.Context) error {
	h.sessions.Delete(c.Chat().ID)
	return c.Send("👋 Logged out. Send me a name when you want to chat again.")
}
