package testutil

import (
	"go.uber.org/zap"

	"fixie/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(name string, points int) *domain.User {
	return &domain.User{
		Name:   name,
		ChatID: 100,
		Points: points,
	}
}

// NewTestEntry creates a test knowledge entry
func NewTestEntry(problemKey, solution, submittedBy string) domain.KnowledgeEntry {
	return domain.KnowledgeEntry{
		ProblemKey:  problemKey,
		Solution:    solution,
		SubmittedBy: submittedBy,
		Confidence:  domain.DefaultConfidence,
	}
}
