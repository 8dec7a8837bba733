package handler

import (
	"fixie/internal/domain"
	"fixie/internal/middleware"
	"fixie/internal/service"
	"fixie/internal/session"
	"fixie/internal/speech"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	chat        *service.ChatService
	profile     *service.ProfileService
	sessions    session.Store
	transcriber speech.Transcriber // nil when voice input is not wired
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	chat *service.ChatService,
	profile *service.ProfileService,
	sessions session.Store,
	transcriber speech.Transcriber,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		chat:        chat,
		profile:     profile,
		sessions:    sessions,
		transcriber: transcriber,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	requireLogin := middleware.RequireLogin(h.sessions, h.profile, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/profile", h.handleProfile, requireLogin)
	h.bot.Handle("/mute", h.handleMute, requireLogin)
	h.bot.Handle("/logout", h.handleLogout, requireLogin)

	// Text and voice messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnVoice, h.handleVoice, requireLogin)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnVoteYes, h.handleVoteYes, requireLogin)
	h.bot.Handle(&btnVoteNo, h.handleVoteNo, requireLogin)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback, requireLogin)
}

// Inline keyboard buttons
var (
	btnVoteYes = tele.Btn{
		Unique: "fb_yes",
		Text:   "👍",
	}
	btnVoteNo = tele.Btn{
		Unique: "fb_no",
		Text:   "👎",
	}
)

// feedbackMarkup returns the 👍/👎 vote keyboard
func feedbackMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnVoteYes, btnVoteNo))
	return markup
}

// suggestionsMarkup returns one-tap query buttons built from the knowledge
// base, or nil when there is nothing to suggest
func (h *Handler) suggestionsMarkup() *tele.ReplyMarkup {
	keys, err := h.profile.Suggestions()
	if err != nil {
		h.logger.Warn("Failed to load suggestions", zap.Error(err))
		return nil
	}
	if len(keys) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, markup.Row(markup.Data(key, "suggest", key)))
	}
	markup.Inline(rows...)
	return markup
}

// deliver renders orchestrator messages to the chat
func (h *Handler) deliver(c tele.Context, msgs []domain.Message) error {
	for _, m := range msgs {
		var err error
		switch m.Kind {
		case domain.KindFeedbackRequest:
			err = c.Send("Did that solve your problem?", feedbackMarkup())
		default:
			err = c.Send(m.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
