package events

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeChatTurnServed = "CHAT_TURN_SERVED"

// NewChatTurnServedEvent records a fully answered chat turn for
// downstream usage analytics.
func NewChatTurnServedEvent(userId, sessionId uuid.UUID, subject, medium, status string, passageCount, figureCount int) Event {
	return BaseEvent{
		Type: EventTypeChatTurnServed,
		Data: map[string]interface{}{
			"user_id":       userId.String(),
			"session_id":    sessionId.String(),
			"subject":       subject,
			"medium":        medium,
			"status":        status,
			"passage_count": passageCount,
			"figure_count":  figureCount,
		},
		OccurredAt: time.Now(),
	}
}
