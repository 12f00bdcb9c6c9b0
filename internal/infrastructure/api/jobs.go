package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// CreateJob posts a new job. POST /api/jobs.
func (c *Client) CreateJob(ctx context.Context, in ports.JobInput) (*domain.Job, error) {
	var out domain.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListJobs lists all visible jobs. GET /api/jobs.
func (c *Client) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var out []domain.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetJob fetches one job. GET /api/jobs/:id.
func (c *Client) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	var out domain.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
