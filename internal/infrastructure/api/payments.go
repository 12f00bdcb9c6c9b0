package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
)

type fundRequest struct {
	JobID  string  `json:"jobId"`
	Amount float64 `json:"amount"`
}

// FundEscrow initialises an escrow payment for a job.
// POST /api/transactions/fund.
func (c *Client) FundEscrow(ctx context.Context, jobID string, amount float64) (*domain.PaymentInit, error) {
	var out domain.PaymentInit
	if err := c.do(ctx, http.MethodPost, "/api/transactions/fund", fundRequest{JobID: jobID, Amount: amount}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyTransactions lists the caller's escrow transactions.
// GET /api/transactions/me.
func (c *Client) MyTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InitPayment initialises a payment directly. POST /api/payments/init.
func (c *Client) InitPayment(ctx context.Context, jobID string, amount float64) (*domain.PaymentInit, error) {
	var out domain.PaymentInit
	if err := c.do(ctx, http.MethodPost, "/api/payments/init", fundRequest{JobID: jobID, Amount: amount}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPayment resolves a provider reference to its transaction.
// GET /api/payments/verify/:ref.
func (c *Client) VerifyPayment(ctx context.Context, reference string) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/payments/verify/"+url.PathEscape(reference), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
