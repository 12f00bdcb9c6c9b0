package domain

import "time"

// Proposal lifecycle states as reported by the backend.
const (
	ProposalPending  = "pending"
	ProposalAccepted = "accepted"
	ProposalRejected = "rejected"
)

// Job is a posting created by a client. Client and Freelancer are populated
// objects on detail responses and may be zero-valued in list responses.
type Job struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Budget      float64   `json:"budget,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status,omitempty"`
	Client      *User     `json:"client,omitempty"`
	Freelancer  *User     `json:"freelancer,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Proposal is a freelancer's bid on a job.
type Proposal struct {
	ID          string    `json:"_id"`
	JobID       string    `json:"jobId,omitempty"`
	Job         *Job      `json:"job,omitempty"`
	Freelancer  *User     `json:"freelancer,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	BidAmount   float64   `json:"bidAmount,omitempty"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
