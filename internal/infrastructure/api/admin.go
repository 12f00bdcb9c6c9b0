package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
)

// AdminUsers lists all users. GET /api/admin/users.
func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminJobs lists all jobs. GET /api/admin/jobs.
func (c *Client) AdminJobs(ctx context.Context) ([]domain.Job, error) {
	var out []domain.Job
	if err := c.do(ctx, http.MethodGet, "/api/admin/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminTransactions lists all transactions. GET /api/admin/transactions.
func (c *Client) AdminTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/admin/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminDeleteUser removes a user. DELETE /api/admin/users/:id.
func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(userID), nil, nil)
}
