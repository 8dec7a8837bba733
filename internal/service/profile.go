package service

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"fixie/internal/domain"
	"fixie/internal/repository"
)

// MaxSuggestions caps how many knowledge keys are offered as quick queries.
const MaxSuggestions = 4

// ProfileService handles login-by-name, profile display, and suggestions.
type ProfileService struct {
	users     repository.UserRepository
	knowledge repository.KnowledgeRepository
	logger    *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	users repository.UserRepository,
	knowledge repository.KnowledgeRepository,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		users:     users,
		knowledge: knowledge,
		logger:    logger,
	}
}

// Login fetches the user with the given name, creating a fresh profile with
// zero points on first use, and binds the chat to it.
func (s *ProfileService) Login(name string, chatID int64) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	user, err := s.users.GetUser(name)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &domain.User{Name: name, ChatID: chatID}
		if err := s.users.CreateUser(*user); err != nil {
			return nil, err
		}
		s.logger.Info("New user registered", zap.String("name", name))
	}

	if err := s.users.BindChat(name, chatID); err != nil {
		return nil, err
	}
	user.ChatID = chatID

	return user, nil
}

// FindByChat restores the user previously bound to a chat, or nil.
func (s *ProfileService) FindByChat(chatID int64) (*domain.User, error) {
	return s.users.GetUserByChat(chatID)
}

// Profile returns the user's persisted record and badge title.
func (s *ProfileService) Profile(name string) (*domain.User, string, error) {
	user, err := s.users.GetUser(name)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", fmt.Errorf("user %q not found", name)
	}
	return user, domain.BadgeFor(user.Points), nil
}

// Suggestions returns up to MaxSuggestions knowledge problem keys to offer
// as one-tap queries.
func (s *ProfileService) Suggestions() ([]string, error) {
	entries, err := s.knowledge.ListEntries()
	if err != nil {
		return nil, err
	}

	keys := lo.Map(entries, func(e domain.KnowledgeEntry, _ int) string {
		return e.ProblemKey
	})
	if len(keys) > MaxSuggestions {
		keys = keys[:MaxSuggestions]
	}
	return keys, nil
}
