package luxebid

import (
	"context"
	"fmt"

	"github.com/luxebid/luxebid/pkg/model"
)

// ListMessages fetches the conversation with another user, normalizing
// the backend's mixed message shapes into model.Message.
func (c *Client) ListMessages(ctx context.Context, withUserID int64) ([]model.Message, error) {
	raws, err := getList[rawMessage](ctx, c, fmt.Sprintf("/messages/?user=%d", withUserID))
	if err != nil {
		return nil, wrap("list messages", err)
	}

	messages := make([]model.Message, len(raws))
	for i, raw := range raws {
		messages[i] = normalizeMessage(raw)
	}
	return messages, nil
}

// SendMessage sends a message to another user and returns the stored
// message in normalized form.
func (c *Client) SendMessage(ctx context.Context, toUserID int64, body string) (*model.Message, error) {
	payload := map[string]any{
		"recipient": toUserID,
		"content":   body,
	}

	var raw rawMessage
	if err := c.post(ctx, "/messages/", payload, &raw); err != nil {
		return nil, wrap("send message", err)
	}
	msg := normalizeMessage(raw)
	return &msg, nil
}

// ListDisputes fetches the authenticated user's disputes.
func (c *Client) ListDisputes(ctx context.Context) ([]model.Dispute, error) {
	disputes, err := getList[model.Dispute](ctx, c, "/disputes/")
	if err != nil {
		return nil, wrap("list disputes", err)
	}
	return disputes, nil
}

// GetDispute fetches a single dispute by ID.
func (c *Client) GetDispute(ctx context.Context, id int64) (*model.Dispute, error) {
	var dispute model.Dispute
	if err := c.get(ctx, fmt.Sprintf("/disputes/%d/", id), &dispute); err != nil {
		return nil, wrap("get dispute", err)
	}
	return &dispute, nil
}
