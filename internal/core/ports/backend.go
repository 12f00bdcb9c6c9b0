package ports

import (
	"context"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
)

// RegisterInput is the flattened registration payload. The multi-step form
// assembles it from a common part plus one role-specific part; list fields
// arrive here already split (never as comma strings).
type RegisterInput struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Role            string   `json:"role"`
	Phone           string   `json:"phone,omitempty"`
	Country         string   `json:"country,omitempty"`
	City            string   `json:"city,omitempty"`
	ProfileImage    string   `json:"profileImage,omitempty"`
	Title           string   `json:"title,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	HourlyRate      float64  `json:"hourlyRate,omitempty"`
	PortfolioLinks  []string `json:"portfolioLinks"`
	Languages       []string `json:"languages"`
	CompanyName     string   `json:"companyName,omitempty"`
	CompanyWebsite  string   `json:"companyWebsite,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	TeamSize        string   `json:"teamSize,omitempty"`
}

// AuthResult bundles the credential and user returned by login/register so
// the caller can persist both in one step.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// ProfileUpdate carries the editable profile fields for PUT /api/auth/me.
// Pointer fields distinguish "leave unchanged" from "set to empty".
type ProfileUpdate struct {
	Name            *string   `json:"name,omitempty"`
	Title           *string   `json:"title,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	ProfileImage    *string   `json:"profileImage,omitempty"`
	Skills          *[]string `json:"skills,omitempty"`
	ExperienceLevel *string   `json:"experienceLevel,omitempty"`
	HourlyRate      *float64  `json:"hourlyRate,omitempty"`
	PortfolioLinks  *[]string `json:"portfolioLinks,omitempty"`
	Languages       *[]string `json:"languages,omitempty"`
}

// JobInput carries the fields for posting a job. FreelancerID is set when a
// client hires a specific freelancer directly.
type JobInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Budget       float64 `json:"budget,omitempty"`
	Category     string  `json:"category,omitempty"`
	FreelancerID string  `json:"freelancer,omitempty"`
}

// ProposalInput carries a freelancer's bid.
type ProposalInput struct {
	JobID       string  `json:"jobId,omitempty"`
	CoverLetter string  `json:"coverLetter"`
	BidAmount   float64 `json:"bidAmount,omitempty"`
}

// WorkInput carries a new portfolio item. MediaURL comes from the media
// upload helper, never from the backend.
type WorkInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	MediaURL    string `json:"mediaUrl"`
	MediaType   string `json:"mediaType,omitempty"`
}

// Backend is the full REST surface this client consumes. Every method is a
// thin verb+path wrapper: no retries, no caching, no response transformation.
// Non-2xx responses surface as *APIError from the implementation.
type Backend interface {
	// Auth.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in ProfileUpdate) (*domain.User, error)

	// Jobs.
	CreateJob(ctx context.Context, in JobInput) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)

	// Proposals, job-scoped.
	SubmitProposal(ctx context.Context, jobID string, in ProposalInput) (*domain.Proposal, error)
	ListJobProposals(ctx context.Context, jobID string) ([]domain.Proposal, error)
	UpdateProposalStatus(ctx context.Context, jobID, proposalID, status string) (*domain.Proposal, error)

	// Proposals, flat collection.
	CreateProposal(ctx context.Context, in ProposalInput) (*domain.Proposal, error)
	ProposalsByJob(ctx context.Context, jobID string) ([]domain.Proposal, error)
	AcceptProposal(ctx context.Context, proposalID string) error
	RejectProposal(ctx context.Context, proposalID string) error

	// Freelancer directory.
	ListFreelancers(ctx context.Context) ([]domain.User, error)
	GetFreelancer(ctx context.Context, id string) (*domain.User, error)
	FreelancersBySkill(ctx context.Context, skill string) ([]domain.User, error)

	// Messaging.
	SendMessage(ctx context.Context, toUserID, content string) (*domain.Message, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)

	// Portfolio gallery.
	CreateWork(ctx context.Context, in WorkInput) (*domain.Work, error)
	ListWorks(ctx context.Context) ([]domain.Work, error)
	MyWorks(ctx context.Context) ([]domain.Work, error)

	// Escrow wallet.
	FundEscrow(ctx context.Context, jobID string, amount float64) (*domain.PaymentInit, error)
	MyTransactions(ctx context.Context) ([]domain.Transaction, error)
	InitPayment(ctx context.Context, jobID string, amount float64) (*domain.PaymentInit, error)
	VerifyPayment(ctx context.Context, reference string) (*domain.Transaction, error)

	// Admin panel.
	AdminUsers(ctx context.Context) ([]domain.User, error)
	AdminJobs(ctx context.Context) ([]domain.Job, error)
	AdminTransactions(ctx context.Context) ([]domain.Transaction, error)
	AdminDeleteUser(ctx context.Context, userID string) error
}
