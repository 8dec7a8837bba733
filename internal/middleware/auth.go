package middleware

import (
	"fixie/internal/service"
	"fixie/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequireLogin ensures the chat has an active session before the handler
// runs, restoring one from the persisted chat binding when possible.
// Unrecognized chats are asked for a profile name instead.
func RequireLogin(sessions session.Store, profile *service.ProfileService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chatID := c.Chat().ID

			if _, ok := sessions.Get(chatID); ok {
				return next(c)
			}

			user, err := profile.FindByChat(chatID)
			if err != nil {
				logger.Error("Failed to restore session", zap.Error(err), zap.Int64("chat_id", chatID))
				return c.Send("⚠️ Something went wrong. Try again later.")
			}

			if user == nil {
				return c.Send("👋 Welcome! What should I call you?")
			}

			sessions.Put(session.New(chatID, user.Name, user.Points))
			logger.Info("Session restored",
				zap.Int64("chat_id", chatID),
				zap.String("user", user.Name),
			)

			return next(c)
		}
	}
}
