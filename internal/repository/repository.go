package repository

import (
	"fixie/internal/domain"
)

// KnowledgeRepository defines knowledge base data operations
type KnowledgeRepository interface {
	ListEntries() ([]domain.KnowledgeEntry, error)
	GetEntry(problemKey string) (*domain.KnowledgeEntry, error)
	SaveEntry(entry domain.KnowledgeEntry) error
	RecordSuccess(problemKey string) error
}

// UserRepository defines user data operations
type UserRepository interface {
	GetUser(name string) (*domain.User, error)
	GetUserByChat(chatID int64) (*domain.User, error)
	CreateUser(user domain.User) error
	BindChat(name string, chatID int64) error
	AddPoints(name string, delta int) (int, error)
}
