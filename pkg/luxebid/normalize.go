package luxebid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luxebid/luxebid/pkg/model"
)

// decodeList decodes a list payload that may be either a bare JSON
// array or an envelope with a "results" field. Both shapes yield the
// same slice; an empty or null payload yields an empty list.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("parse list: %w", err)
		}
		return items, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("parse list envelope: %w", err)
	}
	return envelope.Results, nil
}

// rawMessage mirrors the message shapes the backend actually sends.
// Older endpoints use message/sender, newer ones content/sender_id,
// and the sender key itself is sometimes a bare ID and sometimes an
// embedded user object.
type rawMessage struct {
	ID         int64           `json:"id"`
	Message    string          `json:"message"`
	Content    string          `json:"content"`
	Sender     json.RawMessage `json:"sender"`
	SenderID   int64           `json:"sender_id"`
	SenderName string          `json:"sender_name"`
	CreatedAt  time.Time       `json:"created_at"`
	Timestamp  time.Time       `json:"timestamp"`
}

// normalizeMessage maps a heterogeneous backend message into the one
// internal shape the rest of the system sees.
func normalizeMessage(raw rawMessage) model.Message {
	msg := model.Message{
		ID:         raw.ID,
		SenderID:   raw.SenderID,
		SenderName: raw.SenderName,
		Body:       raw.Content,
		SentAt:     raw.Timestamp,
	}

	if msg.Body == "" {
		msg.Body = raw.Message
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = raw.CreatedAt
	}

	if msg.SenderID == 0 && len(raw.Sender) > 0 {
		// sender is either a bare ID or an embedded user object.
		var id int64
		if json.Unmarshal(raw.Sender, &id) == nil {
			msg.SenderID = id
		} else {
			var embedded struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			}
			if json.Unmarshal(raw.Sender, &embedded) == nil {
				msg.SenderID = embedded.ID
				if msg.SenderName == "" {
					msg.SenderName = embedded.Name
				}
			}
		}
	}

	return msg
}
