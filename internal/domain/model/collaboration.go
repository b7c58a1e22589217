//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// ApplicationStatus tracks where an application sits in review.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// Valid reports whether the application status is supported.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusShortlisted,
		ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// Application is a user's application to an opportunity.
type Application struct {
	ID           int64             `json:"id"`
	Opportunity  *Opportunity      `json:"opportunity,omitempty"`
	Applicant    *User             `json:"applicant,omitempty"`
	CoverLetter  string            `json:"cover_letter,omitempty"`
	ResumeURL    *string           `json:"resume_url,omitempty"`
	PortfolioURL *string           `json:"portfolio_url,omitempty"`
	Status       ApplicationStatus `json:"status"`
	AppliedAt    *time.Time        `json:"applied_at,omitempty"`
}

// CreateApplicationRequest is the payload for POST /api/v1/collaborations/applications/.
type CreateApplicationRequest struct {
	OpportunityID int64  `json:"opportunity"`
	CoverLetter   string `json:"cover_letter,omitempty"`
	ResumeURL     string `json:"resume_url,omitempty"`
	PortfolioURL  string `json:"portfolio_url,omitempty"`
}

// Validate checks request fields before sending.
func (r *CreateApplicationRequest) Validate() error {
	if r.OpportunityID <= 0 {
		return errors.New("opportunity id is required")
	}
	return nil
}

// InterestType distinguishes talent interest from investor interest.
type InterestType string

const (
	InterestTypeTalent   InterestType = "talent"
	InterestTypeInvestor InterestType = "investor"
)

// Interest is a non-application expression of interest in a startup.
type Interest struct {
	ID        int64        `json:"id"`
	User      *User        `json:"user,omitempty"`
	StartupID int64        `json:"startup,omitempty"`
	Type      InterestType `json:"type,omitempty"`
	Message   string       `json:"message,omitempty"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
}

// ExpressInterestRequest is the payload for POST /api/v1/collaborations/startups/{id}/interest/.
type ExpressInterestRequest struct {
	Message string `json:"message,omitempty"`
}

// Normalize trims whitespace from the optional message.
func (r *ExpressInterestRequest) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
}
