package domain

// Mode represents the conversation state machine position.
type Mode string

const (
	ModeIdle             Mode = "idle"
	ModeAwaitingProblem  Mode = "awaiting_problem"
	ModeAwaitingSolution Mode = "awaiting_solution"
)

// ConversationState holds the mutable per-session state of the teach flow
// and feedback tracking. Each chat session owns exactly one.
type ConversationState struct {
	Mode               Mode
	PendingProblem     string
	PendingFeedbackKey string
}
