package api

import (
	"context"
	"net/http"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// CreateWork adds a portfolio item. POST /api/works.
func (c *Client) CreateWork(ctx context.Context, in ports.WorkInput) (*domain.Work, error) {
	var out domain.Work
	if err := c.do(ctx, http.MethodPost, "/api/works", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWorks lists the public gallery. GET /api/works.
func (c *Client) ListWorks(ctx context.Context) ([]domain.Work, error) {
	var out []domain.Work
	if err := c.do(ctx, http.MethodGet, "/api/works", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyWorks lists the caller's own portfolio items. GET /api/works/me.
func (c *Client) MyWorks(ctx context.Context) ([]domain.Work, error) {
	var out []domain.Work
	if err := c.do(ctx, http.MethodGet, "/api/works/me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
