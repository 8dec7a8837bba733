package domain

// User represents a chat user identified by a unique profile name.
type User struct {
	Name   string
	ChatID int64
	Points int
}

// Point awards for gamification events.
const (
	PointsTeach    = 5 // submitting a new solution
	PointsFeedback = 1 // positive feedback on one's accepted solution
)
