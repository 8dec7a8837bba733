package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fixie/internal/domain"
)

func entry(key, solution string) domain.KnowledgeEntry {
	return domain.KnowledgeEntry{
		ProblemKey:  key,
		Solution:    solution,
		SubmittedBy: "alice",
		Confidence:  domain.DefaultConfidence,
	}
}

func TestMatcher_Match(t *testing.T) {
	snapshot := []domain.KnowledgeEntry{
		entry("pump won't start", "Check valve V3"),
		entry("vacuum leak on chamber door", "Replace the o-ring"),
		entry("rf generator fault", "Reseat the coax cable"),
	}

	tests := []struct {
		name        string
		query       string
		expectedTop string
		expectEmpty bool
	}{
		{
			name:        "exact match",
			query:       "pump won't start",
			expectedTop: "pump won't start",
		},
		{
			name:        "case insensitive",
			query:       "PUMP WON'T START",
			expectedTop: "pump won't start",
		},
		{
			name:        "small typo",
			query:       "pump wont start",
			expectedTop: "pump won't start",
		},
		{
			name:        "short query hits longer key",
			query:       "vacuum leak",
			expectedTop: "vacuum leak on chamber door",
		},
		{
			name:        "unrelated query",
			query:       "why is the sky blue",
			expectEmpty: true,
		},
		{
			name:        "empty query",
			query:       "",
			expectEmpty: true,
		},
		{
			name:        "whitespace query",
			query:       "   ",
			expectEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(DefaultThreshold)
			m.Rebuild(snapshot)

			candidates := m.Match(tt.query)

			if tt.expectEmpty {
				assert.Empty(t, candidates)
				return
			}

			assert.NotEmpty(t, candidates)
			assert.Equal(t, tt.expectedTop, candidates[0].Entry.ProblemKey)
		})
	}
}

func TestMatcher_Match_OrderedBestFirst(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	m.Rebuild([]domain.KnowledgeEntry{
		entry("pump won't start", "Check valve V3"),
		entry("pump won't stop", "Close valve V4"),
	})

	candidates := m.Match("pump won't start")

	assert.Len(t, candidates, 2)
	assert.Equal(t, "pump won't start", candidates[0].Entry.ProblemKey)
	assert.Equal(t, float64(0), candidates[0].Score)
	assert.Less(t, candidates[0].Score, candidates[1].Score)
}

func TestMatcher_Best_AfterRebuild(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	m.Rebuild(nil)

	assert.Nil(t, m.Best("p"))

	// Teaching "P" stores the lower-cased key; querying "p" must return it.
	m.Rebuild([]domain.KnowledgeEntry{entry("p", "press the reset button")})

	best := m.Best("p")
	assert.NotNil(t, best)
	assert.Equal(t, "p", best.Entry.ProblemKey)
	assert.Equal(t, float64(0), best.Score)
}

func TestMatcher_EmptySnapshot(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	assert.Empty(t, m.Match("anything"))
	assert.Nil(t, m.Best("anything"))
}
