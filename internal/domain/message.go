package domain

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// MessageKind tags the message union: plain text or a feedback request
// tied to a knowledge entry.
type MessageKind string

const (
	KindText            MessageKind = "text"
	KindFeedbackRequest MessageKind = "feedback"
)

// Message is one entry in a conversation history. Text messages carry Text;
// feedback requests carry the ProblemKey of the matched entry instead.
type Message struct {
	Kind       MessageKind
	Sender     Sender
	Text       string
	ProblemKey string
}

// NewText builds a plain text message.
func NewText(sender Sender, text string) Message {
	return Message{Kind: KindText, Sender: sender, Text: text}
}

// NewFeedbackRequest builds a bot message asking whether the matched
// solution helped.
func NewFeedbackRequest(problemKey string) Message {
	return Message{Kind: KindFeedbackRequest, Sender: SenderBot, ProblemKey: problemKey}
}
