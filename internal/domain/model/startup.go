//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxStartupNameLen    = 100
	maxStartupTaglineLen = 200
)

// StartupStage represents a startup's funding/maturity stage.
type StartupStage string

const (
	StartupStageIdea   StartupStage = "idea"
	StartupStageMVP    StartupStage = "mvp"
	StartupStageEarly  StartupStage = "early"
	StartupStageGrowth StartupStage = "growth"
	StartupStageScale  StartupStage = "scale"
)

// Valid reports whether the stage is supported by the backend.
func (s StartupStage) Valid() bool {
	switch s {
	case StartupStageIdea, StartupStageMVP, StartupStageEarly, StartupStageGrowth, StartupStageScale:
		return true
	default:
		return false
	}
}

// StartupStatus represents the operating status of a startup listing.
type StartupStatus string

const (
	StartupStatusActive   StartupStatus = "active"
	StartupStatusHiring   StartupStatus = "hiring"
	StartupStatusStealth  StartupStatus = "stealth"
	StartupStatusInactive StartupStatus = "inactive"
)

// Startup is a venture listing created by a founder.
type Startup struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Tagline     string        `json:"tagline,omitempty"`
	Description string        `json:"description"`
	Industry    string        `json:"industry"`
	Stage       StartupStage  `json:"stage,omitempty"`
	Status      StartupStatus `json:"status,omitempty"`
	Location    string        `json:"location,omitempty"`
	IsRemote    bool          `json:"is_remote"`
	Website     *string       `json:"website,omitempty"`
	Founder     *User         `json:"founder,omitempty"`
	TeamSize    int           `json:"team_size,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
}

// CreateStartupRequest is the payload for POST /api/v1/startups/.
type CreateStartupRequest struct {
	Name        string        `json:"name"`
	Tagline     string        `json:"tagline,omitempty"`
	Description string        `json:"description"`
	Industry    string        `json:"industry"`
	Stage       StartupStage  `json:"stage,omitempty"`
	Status      StartupStatus `json:"status,omitempty"`
	Location    string        `json:"location,omitempty"`
	IsRemote    bool          `json:"is_remote,omitempty"`
}

// Validate checks request fields against backend constraints before sending.
func (r *CreateStartupRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("startup name is required")
	}
	if utf8.RuneCountInString(name) > maxStartupNameLen {
		return errors.New("startup name exceeds 100 characters")
	}
	if utf8.RuneCountInString(r.Tagline) > maxStartupTaglineLen {
		return errors.New("startup tagline exceeds 200 characters")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("startup description is required")
	}
	if strings.TrimSpace(r.Industry) == "" {
		return errors.New("startup industry is required")
	}
	if r.Stage != "" && !r.Stage.Valid() {
		return errors.New("invalid startup stage")
	}
	return nil
}

// StartupUpdate is a progress post on a startup page.
type StartupUpdate struct {
	ID        int64      `json:"id"`
	StartupID int64      `json:"startup,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// StartupSearchOptions controls filtering for GET /api/v1/startups/.
// Q matches name/tagline/description via the backend search layer.
type StartupSearchOptions struct {
	Q        string
	Industry string
	Stage    StartupStage
	Limit    int
}
