package api

import (
	"context"
	"net/http"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
)

type sendMessageRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

// SendMessage sends a direct message. POST /api/messages.
func (c *Client) SendMessage(ctx context.Context, toUserID, content string) (*domain.Message, error) {
	var out domain.Message
	if err := c.do(ctx, http.MethodPost, "/api/messages", sendMessageRequest{To: toUserID, Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages lists the caller's messages. GET /api/messages.
func (c *Client) ListMessages(ctx context.Context) ([]domain.Message, error) {
	var out []domain.Message
	if err := c.do(ctx, http.MethodGet, "/api/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
