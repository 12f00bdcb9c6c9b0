package domain

import "time"

// Escrow transaction states as reported by the backend.
const (
	TransactionPending  = "pending"
	TransactionFunded   = "funded"
	TransactionReleased = "released"
	TransactionFailed   = "failed"
)

// Transaction is an escrow-wallet entry tied to a job.
type Transaction struct {
	ID        string    `json:"_id"`
	Job       *Job      `json:"job,omitempty"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status,omitempty"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// PaymentInit is the backend's response to a funding request. The client
// performs a full browser redirect to AuthorizationURL; the provider later
// redirects back carrying Reference, which drives verification.
type PaymentInit struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference,omitempty"`
}
