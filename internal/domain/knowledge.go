package domain

// KnowledgeEntry is a stored problem→solution pair contributed by a user.
// ProblemKey is always the lower-cased exact text of the taught problem.
type KnowledgeEntry struct {
	ProblemKey   string
	Solution     string
	SubmittedBy  string
	Confidence   int
	SuccessCount int
	FailureCount int
}

// DefaultConfidence is assigned to every freshly taught entry.
const DefaultConfidence = 50
