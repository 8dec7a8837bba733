package search

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"fixie/internal/domain"
)

// DefaultThreshold is the normalized edit-distance cutoff for accepting a
// candidate match.
const DefaultThreshold = 0.4

// Candidate is a knowledge entry accepted as a match for a query, with its
// normalized distance score (0 is exact, lower is better).
type Candidate struct {
	Entry domain.KnowledgeEntry
	Score float64
}

// Matcher ranks knowledge entries against free-text queries. It indexes the
// lower-cased problem keys of a knowledge snapshot and must be rebuilt
// whenever the snapshot changes.
type Matcher struct {
	mu        sync.RWMutex
	entries   []domain.KnowledgeEntry
	keys      []string
	threshold float64
}

// NewMatcher creates a matcher with the given acceptance threshold.
// A threshold of 0 or less falls back to DefaultThreshold.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Rebuild replaces the indexed snapshot.
func (m *Matcher) Rebuild(entries []domain.KnowledgeEntry) {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = strings.ToLower(e.ProblemKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = entries
	m.keys = keys
}

// Match returns accepted candidates for the query, best first. A key is
// accepted when its normalized Levenshtein distance to the query is within
// the threshold, or when the query is a case-folded fuzzy subsequence of the
// key (so short queries still hit longer stored problems).
func (m *Matcher) Match(query string) []Candidate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var candidates []Candidate
	for i, key := range m.keys {
		longest := utf8.RuneCountInString(key)
		if n := utf8.RuneCountInString(q); n > longest {
			longest = n
		}
		if longest == 0 {
			continue
		}

		score := float64(fuzzy.LevenshteinDistance(q, key)) / float64(longest)
		if score > m.threshold && !fuzzy.MatchNormalizedFold(q, key) {
			continue
		}

		candidates = append(candidates, Candidate{Entry: m.entries[i], Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})

	return candidates
}

// Best returns the top-ranked candidate, or nil when nothing is acceptable.
func (m *Matcher) Best(query string) *Candidate {
	candidates := m.Match(query)
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}
