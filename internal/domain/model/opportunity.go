//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// OpportunityType categorizes a posted opportunity.
type OpportunityType string

const (
	OpportunityTypeHackathon     OpportunityType = "hackathon"
	OpportunityTypeInternship    OpportunityType = "internship"
	OpportunityTypeProject       OpportunityType = "project"
	OpportunityTypeJob           OpportunityType = "job"
	OpportunityTypeCollaboration OpportunityType = "collaboration"
	OpportunityTypeCompetition   OpportunityType = "competition"
)

// Valid reports whether the opportunity type is supported.
func (t OpportunityType) Valid() bool {
	switch t {
	case OpportunityTypeHackathon, OpportunityTypeInternship, OpportunityTypeProject,
		OpportunityTypeJob, OpportunityTypeCollaboration, OpportunityTypeCompetition:
		return true
	default:
		return false
	}
}

// OpportunityStatus represents the lifecycle state of an opportunity.
type OpportunityStatus string

const (
	OpportunityStatusDraft      OpportunityStatus = "draft"
	OpportunityStatusOpen       OpportunityStatus = "open"
	OpportunityStatusInProgress OpportunityStatus = "in_progress"
	OpportunityStatusClosed     OpportunityStatus = "closed"
	OpportunityStatusCompleted  OpportunityStatus = "completed"
)

// Opportunity is a posting users can apply to (job, project, hackathon, ...).
type Opportunity struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	Type           OpportunityType   `json:"type"`
	Description    string            `json:"description"`
	Organization   string            `json:"organization,omitempty"`
	Location       string            `json:"location,omitempty"`
	IsRemote       bool              `json:"is_remote"`
	RequiredSkills []string          `json:"required_skills,omitempty"`
	Status         OpportunityStatus `json:"status,omitempty"`
	StartupID      *int64            `json:"startup,omitempty"`
	Deadline       *time.Time        `json:"deadline,omitempty"`
	CreatedAt      *time.Time        `json:"created_at,omitempty"`
}

// CreateOpportunityRequest is the payload for POST /api/v1/opportunities/.
type CreateOpportunityRequest struct {
	Title          string          `json:"title"`
	Type           OpportunityType `json:"type"`
	Description    string          `json:"description"`
	Organization   string          `json:"organization,omitempty"`
	Location       string          `json:"location,omitempty"`
	IsRemote       bool            `json:"is_remote,omitempty"`
	RequiredSkills []string        `json:"required_skills,omitempty"`
	StartupID      *int64          `json:"startup,omitempty"`
}

// Validate checks request fields against backend constraints before sending.
func (r *CreateOpportunityRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("opportunity title is required")
	}
	if !r.Type.Valid() {
		return errors.New("invalid opportunity type")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("opportunity description is required")
	}
	return nil
}
