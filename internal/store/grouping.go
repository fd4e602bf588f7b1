package store

import "github.com/s21platform/chat-gateway/internal/model"

// DisplayMessage pairs a message with its rendering hint.
type DisplayMessage struct {
	model.Message
	ShowHeader bool `json:"show_header"`
}

const displayedMinuteLayout = "2006-01-02 15:04"

// GroupForDisplay marks which messages repeat the author/time header:
// consecutive messages from the same author within the same displayed
// minute suppress it.
func GroupForDisplay(messages model.MessageList) []DisplayMessage {
	display := make([]DisplayMessage, len(messages))

	for i, message := range messages {
		showHeader := true
		if i > 0 {
			prev := messages[i-1]
			sameAuthor := prev.UserName == message.UserName
			sameMinute := prev.CreatedAt.Format(displayedMinuteLayout) == message.CreatedAt.Format(displayedMinuteLayout)
			showHeader = !(sameAuthor && sameMinute)
		}
		display[i] = DisplayMessage{Message: message, ShowHeader: showHeader}
	}

	return display
}
