package game

// MessageLog is a bounded ring of combat messages for the status panel.
type MessageLog struct {
	msgs     []string
	capacity int
}

// NewMessageLog creates a log that retains the last capacity messages.
func NewMessageLog(capacity int) *MessageLog {
	return &MessageLog{capacity: capacity}
}

// Push appends a message, dropping the oldest when full.
func (l *MessageLog) Push(msg string) {
	l.msgs = append(l.msgs, msg)
	if len(l.msgs) > l.capacity {
		l.msgs = l.msgs[len(l.msgs)-l.capacity:]
	}
}

// Latest returns up to n most recent messages, oldest first.
func (l *MessageLog) Latest(n int) []string {
	if n > len(l.msgs) {
		n = len(l.msgs)
	}
	return l.msgs[len(l.msgs)-n:]
}
