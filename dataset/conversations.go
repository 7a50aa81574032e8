package dataset

import (
	"sort"

	"github.com/stepsync/dance_marketplace/models"
)

// Conversation is a derived view, not a stored entity: messages are grouped
// by the unordered pair of participant ids.
type Conversation struct {
	Key         string         `json:"key"`
	OtherUserID string         `json:"otherUserId"`
	LastMessage models.Message `json:"lastMessage"`
	UnreadCount int            `json:"unreadCount"`
}

// ConversationKey folds (a, b) and (b, a) onto one canonical key.
func ConversationKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

// ConversationsForUser derives the user's conversation list, newest message
// first. UnreadCount counts messages addressed to the user that are unread.
func (d *Dataset) ConversationsForUser(userID string) []Conversation {
	d.mu.RLock()
	defer d.mu.RUnlock()

	byKey := make(map[string]*Conversation)
	for _, m := range d.messages {
		var other string
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}

		key := ConversationKey(m.SenderID, m.ReceiverID)
		conv, ok := byKey[key]
		if !ok {
			conv = &Conversation{Key: key, OtherUserID: other, LastMessage: m}
			byKey[key] = conv
		} else if m.CreatedAt.After(conv.LastMessage.CreatedAt) {
			conv.LastMessage = m
		}
		if m.ReceiverID == userID && !m.IsRead {
			conv.UnreadCount++
		}
	}

	out := make([]Conversation, 0, len(byKey))
	for _, conv := range byKey {
		out = append(out, *conv)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessage.CreatedAt.After(out[j].LastMessage.CreatedAt)
	})
	return out
}
