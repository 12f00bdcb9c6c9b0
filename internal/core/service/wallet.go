package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

var (
	ErrNoJobSelected    = errors.New("a job with an accepted proposal must be selected")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrMissingReference = errors.New("a payment reference is required")
)

// Wallet drives the escrow funding flow: request an authorization URL from
// the backend, hand it to the caller for a full browser redirect, then
// verify the payment by the reference the provider sends back.
type Wallet struct {
	backend ports.Backend
	log     zerolog.Logger
}

func NewWallet(backend ports.Backend, log zerolog.Logger) *Wallet {
	return &Wallet{backend: backend, log: log}
}

// Fund asks the backend to initialise an escrow payment for a job. The
// returned AuthorizationURL must be opened in a browser; nothing is charged
// until the provider flow completes there.
func (w *Wallet) Fund(ctx context.Context, jobID string, amount float64) (*domain.PaymentInit, error) {
	if jobID == "" {
		return nil, ErrNoJobSelected
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	init, err := w.backend.FundEscrow(ctx, jobID, amount)
	if err != nil {
		return nil, err
	}
	w.log.Info().Str("job_id", jobID).Float64("amount", amount).Msg("wallet: payment initialised")
	return init, nil
}

// Verify resolves a provider reference to the resulting transaction.
func (w *Wallet) Verify(ctx context.Context, reference string) (*domain.Transaction, error) {
	if reference == "" {
		return nil, ErrMissingReference
	}
	return w.backend.VerifyPayment(ctx, reference)
}

// Transactions lists the caller's escrow transactions.
func (w *Wallet) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return w.backend.MyTransactions(ctx)
}
