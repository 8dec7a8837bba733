package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fixie/internal/domain"
	"fixie/internal/llm"
	"fixie/internal/repository"
	"fixie/internal/search"
	"fixie/internal/session"
	"fixie/internal/speech"
)

// Canned bot replies.
const (
	ReplyAskProblem    = "Sure! Tell me the problem."
	ReplyAskSolution   = "Thanks! Now give me the solution."
	ReplyCleared       = "🧹 Conversation cleared."
	ReplyBusy          = "⏳ Still working on your last message, one moment."
	ReplyAIUnavailable = "⚠️ AI is unavailable. Try again later."
	ReplySaveFailed    = "⚠️ I couldn't save that right now. Try again later."
	ReplyVoteFailed    = "⚠️ I couldn't record that feedback right now."
	ReplyVoteThanks    = "🙏 Thanks for the feedback!"
	ReplyVoteSorry     = "😕 Sorry about that. I'll try to do better."
	ReplyVoteStale     = "Thanks! That feedback was already recorded."

	thinkingText = "🤔 Thinking with AI..."
)

// ChatService is the conversation orchestrator. Given user input and the
// session's conversation state it decides what to persist, what to reply,
// and what to request from the generative backend.
type ChatService struct {
	knowledge repository.KnowledgeRepository
	users     repository.UserRepository
	matcher   *search.Matcher
	generator llm.Generator
	speaker   speech.Speaker
	locale    string
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	knowledge repository.KnowledgeRepository,
	users repository.UserRepository,
	matcher *search.Matcher,
	generator llm.Generator,
	speaker speech.Speaker,
	locale string,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		knowledge: knowledge,
		users:     users,
		matcher:   matcher,
		generator: generator,
		speaker:   speaker,
		locale:    locale,
		logger:    logger,
	}
}

// RefreshKnowledge reloads the knowledge snapshot and rebuilds the matcher
// index. Called at startup, after every teach write, and periodically.
func (s *ChatService) RefreshKnowledge() error {
	entries, err := s.knowledge.ListEntries()
	if err != nil {
		return fmt.Errorf("list knowledge entries: %w", err)
	}

	s.matcher.Rebuild(entries)
	s.logger.Debug("Knowledge snapshot reloaded", zap.Int("entries", len(entries)))
	return nil
}

// HandleMessage runs one conversation turn for a logged-in session and
// returns the bot messages produced by that turn. At most one turn runs per
// session at a time; overlapping sends are rejected with a busy notice and
// leave all state untouched.
func (s *ChatService) HandleMessage(ctx context.Context, sess *session.Session, text string, fromVoice bool) []domain.Message {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return nil
	}

	if !sess.TryBegin() {
		return []domain.Message{domain.NewText(domain.SenderBot, ReplyBusy)}
	}
	defer sess.End()

	if fromVoice {
		sess.FromVoice = true
	}

	sess.Append(domain.NewText(domain.SenderUser, msg))
	lower := strings.ToLower(msg)

	if lower == "clear" {
		sess.ClearHistory()
		sess.State = domain.ConversationState{Mode: domain.ModeIdle}
		return s.reply(sess, ReplyCleared)
	}

	switch sess.State.Mode {
	case domain.ModeAwaitingProblem:
		sess.State.PendingProblem = msg
		sess.State.Mode = domain.ModeAwaitingSolution
		return s.reply(sess, ReplyAskSolution)

	case domain.ModeAwaitingSolution:
		return s.teach(sess, msg)
	}

	if lower == "solution" {
		sess.State = domain.ConversationState{Mode: domain.ModeAwaitingProblem}
		return s.reply(sess, ReplyAskProblem)
	}

	return s.query(ctx, sess, msg)
}

// teach persists the completed problem→solution pair, awards points, and
// reloads the snapshot so the next match attempt sees the new entry.
func (s *ChatService) teach(sess *session.Session, solution string) []domain.Message {
	problem := sess.State.PendingProblem
	sess.State = domain.ConversationState{Mode: domain.ModeIdle}

	entry := domain.KnowledgeEntry{
		ProblemKey:  strings.ToLower(problem),
		Solution:    solution,
		SubmittedBy: sess.UserName,
		Confidence:  domain.DefaultConfidence,
	}

	if err := s.knowledge.SaveEntry(entry); err != nil {
		s.logger.Error("Failed to save knowledge entry",
			zap.Error(err),
			zap.String("problem_key", entry.ProblemKey),
		)
		return s.reply(sess, ReplySaveFailed)
	}

	points, err := s.users.AddPoints(sess.UserName, domain.PointsTeach)
	if err != nil {
		s.logger.Error("Failed to award teach points",
			zap.Error(err),
			zap.String("user", sess.UserName),
		)
		return s.reply(sess, ReplySaveFailed)
	}
	sess.Points = points

	if err := s.RefreshKnowledge(); err != nil {
		// The periodic refresh will catch up; the write itself succeeded.
		s.logger.Warn("Failed to reload knowledge snapshot", zap.Error(err))
	}

	s.logger.Info("Knowledge entry taught",
		zap.String("problem_key", entry.ProblemKey),
		zap.String("submitted_by", sess.UserName),
	)

	if !sess.Muted {
		s.speaker.Speak(fmt.Sprintf("Got it. I've learned how to fix %s.", problem), s.locale)
	}

	return s.reply(sess, fmt.Sprintf("✅ Learned how to solve %q! You now have %d points.", problem, points))
}

// query runs the fuzzy match → optional improve call → answer call pipeline.
func (s *ChatService) query(ctx context.Context, sess *session.Session, msg string) []domain.Message {
	// A new query silently discards any pending feedback opportunity.
	sess.State.PendingFeedbackKey = ""

	match := s.matcher.Best(msg)

	sess.Append(domain.NewText(domain.SenderBot, thinkingText))

	var replies []domain.Message

	if match != nil && match.Entry.Solution != "" {
		improved, err := s.generator.Generate(ctx, llm.BuildImprovePrompt(match.Entry.Solution))
		if err != nil {
			return s.failTurn(sess, err)
		}

		improvedMsg := domain.NewText(domain.SenderBot, "🛠 Improved user-submitted solution:\n"+improved)
		sess.Append(improvedMsg)
		replies = append(replies, improvedMsg)
	}

	var matchedSolution string
	if match != nil {
		matchedSolution = match.Entry.Solution
	}

	answer, err := s.generator.Generate(ctx, llm.BuildAnswerPrompt(msg, matchedSolution))
	if err != nil {
		return append(replies, s.failTurn(sess, err)...)
	}

	sess.RemoveText(thinkingText)

	answerMsg := domain.NewText(domain.SenderBot, "🤖 AI's response:\n"+answer)
	sess.Append(answerMsg)
	replies = append(replies, answerMsg)

	if match != nil {
		feedback := domain.NewFeedbackRequest(match.Entry.ProblemKey)
		sess.Append(feedback)
		replies = append(replies, feedback)
		sess.State.PendingFeedbackKey = match.Entry.ProblemKey
	}

	// Voice-originated queries are spoken once regardless of mute.
	if !sess.Muted || sess.FromVoice {
		s.speaker.Speak(answer, s.locale)
		sess.FromVoice = false
	}

	return replies
}

// failTurn implements the single error branch of the query flow: drop the
// transient placeholder, reply with one fixed failure message, award
// nothing, leave no feedback pending.
func (s *ChatService) failTurn(sess *session.Session, err error) []domain.Message {
	s.logger.Error("Generation failed", zap.Error(err), zap.String("user", sess.UserName))
	sess.RemoveText(thinkingText)
	return s.reply(sess, ReplyAIUnavailable)
}

// HandleFeedback applies a vote on the session's pending feedback request.
// A positive vote increments the entry's success count and awards one point
// to its submitter; a negative vote only acknowledges. The pending key is
// cleared before the vote is applied so a second press cannot double-count.
func (s *ChatService) HandleFeedback(sess *session.Session, positive bool) domain.Message {
	key := sess.State.PendingFeedbackKey
	if key == "" {
		return domain.NewText(domain.SenderBot, ReplyVoteStale)
	}
	sess.State.PendingFeedbackKey = ""

	if !positive {
		return s.reply(sess, ReplyVoteSorry)[0]
	}

	entry, err := s.knowledge.GetEntry(key)
	if err != nil || entry == nil {
		s.logger.Error("Failed to load entry for feedback",
			zap.Error(err),
			zap.String("problem_key", key),
		)
		return s.reply(sess, ReplyVoteFailed)[0]
	}

	if err := s.knowledge.RecordSuccess(key); err != nil {
		s.logger.Error("Failed to record feedback vote",
			zap.Error(err),
			zap.String("problem_key", key),
		)
		return s.reply(sess, ReplyVoteFailed)[0]
	}

	points, err := s.users.AddPoints(entry.SubmittedBy, domain.PointsFeedback)
	if err != nil {
		s.logger.Error("Failed to award feedback points",
			zap.Error(err),
			zap.String("user", entry.SubmittedBy),
		)
		return s.reply(sess, ReplyVoteFailed)[0]
	}

	if entry.SubmittedBy == sess.UserName {
		sess.Points = points
	}

	s.logger.Info("Positive feedback recorded",
		zap.String("problem_key", key),
		zap.String("submitted_by", entry.SubmittedBy),
	)

	return s.reply(sess, ReplyVoteThanks)[0]
}

// ToggleMute flips the session's mute flag and reports the new state.
func (s *ChatService) ToggleMute(sess *session.Session) domain.Message {
	sess.Muted = !sess.Muted
	if sess.Muted {
		return s.reply(sess, "🔇 Voice replies muted.")[0]
	}
	return s.reply(sess, "🔊 Voice replies on.")[0]
}

func (s *ChatService) reply(sess *session.Session, texts ...string) []domain.Message {
	msgs := make([]domain.Message, len(texts))
	for i, t := range texts {
		msgs[i] = domain.NewText(domain.SenderBot, t)
	}
	sess.Append(msgs...)
	return msgs
}
