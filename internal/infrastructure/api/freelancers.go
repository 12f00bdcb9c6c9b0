package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
)

// ListFreelancers lists the public freelancer directory. GET /api/freelancers.
func (c *Client) ListFreelancers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/api/freelancers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFreelancer fetches one public freelancer profile. GET /api/freelancers/:id.
func (c *Client) GetFreelancer(ctx context.Context, id string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/api/freelancers/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FreelancersBySkill filters the directory by skill. GET /api/freelancers?skill=.
func (c *Client) FreelancersBySkill(ctx context.Context, skill string) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/api/freelancers?skill="+url.QueryEscape(skill), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
