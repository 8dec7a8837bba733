package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"fixie/internal/domain"
)

// MockKnowledgeRepository is a mock for KnowledgeRepository
type MockKnowledgeRepository struct {
	mock.Mock
}

func (m *MockKnowledgeRepository) ListEntries() ([]domain.KnowledgeEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeEntry), args.Error(1)
}

func (m *MockKnowledgeRepository) GetEntry(problemKey string) (*domain.KnowledgeEntry, error) {
	args := m.Called(problemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KnowledgeEntry), args.Error(1)
}

func (m *MockKnowledgeRepository) SaveEntry(entry domain.KnowledgeEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) RecordSuccess(problemKey string) error {
	args := m.Called(problemKey)
	return args.Error(0)
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(name string) (*domain.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByChat(chatID int64) (*domain.User, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) BindChat(name string, chatID int64) error {
	args := m.Called(name, chatID)
	return args.Error(0)
}

func (m *MockUserRepository) AddPoints(name string, delta int) (int, error) {
	args := m.Called(name, delta)
	return args.Int(0), args.Error(1)
}

// RecordingSpeaker captures spoken texts for assertions.
type RecordingSpeaker struct {
	mu     sync.Mutex
	Spoken []string
}

func (s *RecordingSpeaker) Speak(text, locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Spoken = append(s.Spoken, text)
}

func (s *RecordingSpeaker) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Spoken)
}
