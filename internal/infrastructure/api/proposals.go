package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

type proposalStatusRequest struct {
	Status string `json:"status"`
}

// SubmitProposal bids on a job. POST /api/jobs/:id/proposals.
func (c *Client) SubmitProposal(ctx context.Context, jobID string, in ports.ProposalInput) (*domain.Proposal, error) {
	var out domain.Proposal
	if err := c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/proposals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListJobProposals lists the proposals on a job. GET /api/jobs/:id/proposals.
func (c *Client) ListJobProposals(ctx context.Context, jobID string) ([]domain.Proposal, error) {
	var out []domain.Proposal
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(jobID)+"/proposals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProposalStatus sets a proposal's status on a job.
// PUT /api/jobs/:id/proposals/:proposalId.
func (c *Client) UpdateProposalStatus(ctx context.Context, jobID, proposalID, status string) (*domain.Proposal, error) {
	path := "/api/jobs/" + url.PathEscape(jobID) + "/proposals/" + url.PathEscape(proposalID)
	var out domain.Proposal
	if err := c.do(ctx, http.MethodPut, path, proposalStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProposal bids through the flat collection. POST /api/proposals.
func (c *Client) CreateProposal(ctx context.Context, in ports.ProposalInput) (*domain.Proposal, error) {
	var out domain.Proposal
	if err := c.do(ctx, http.MethodPost, "/api/proposals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProposalsByJob lists proposals via the flat collection.
// GET /api/proposals/job/:id.
func (c *Client) ProposalsByJob(ctx context.Context, jobID string) ([]domain.Proposal, error) {
	var out []domain.Proposal
	if err := c.do(ctx, http.MethodGet, "/api/proposals/job/"+url.PathEscape(jobID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AcceptProposal accepts a proposal. POST /api/proposals/:id/accept.
func (c *Client) AcceptProposal(ctx context.Context, proposalID string) error {
	return c.do(ctx, http.MethodPost, "/api/proposals/"+url.PathEscape(proposalID)+"/accept", nil, nil)
}

// RejectProposal rejects a proposal. POST /api/proposals/:id/reject.
func (c *Client) RejectProposal(ctx context.Context, proposalID string) error {
	return c.do(ctx, http.MethodPost, "/api/proposals/"+url.PathEscape(proposalID)+"/reject", nil, nil)
}
