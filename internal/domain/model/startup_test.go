package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStartupRequest_Validate(t *testing.T) {
	valid := CreateStartupRequest{
		Name:        "Quantify",
		Description: "Analytics for small fleets",
		Industry:    "logistics",
		Stage:       StartupStageMVP,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateStartupRequest)
	}{
		{name: "missing name", mutate: func(r *CreateStartupRequest) { r.Name = "  " }},
		{name: "name too long", mutate: func(r *CreateStartupRequest) { r.Name = strings.Repeat("x", 101) }},
		{name: "tagline too long", mutate: func(r *CreateStartupRequest) { r.Tagline = strings.Repeat("y", 201) }},
		{name: "missing description", mutate: func(r *CreateStartupRequest) { r.Description = "" }},
		{name: "missing industry", mutate: func(r *CreateStartupRequest) { r.Industry = "" }},
		{name: "bad stage", mutate: func(r *CreateStartupRequest) { r.Stage = "unicorn" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateOpportunityRequest_Validate(t *testing.T) {
	valid := CreateOpportunityRequest{
		Title:       "Backend engineer",
		Type:        OpportunityTypeJob,
		Description: "Own the API layer",
	}
	require.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = " "
	assert.Error(t, missingTitle.Validate())

	badType := valid
	badType.Type = "gig"
	assert.Error(t, badType.Validate())
}

func TestAddSkillRequest_Normalize(t *testing.T) {
	req := AddSkillRequest{Name: "  Go  "}
	req.Normalize()
	assert.Equal(t, "Go", req.Name)
	assert.Equal(t, ProficiencyIntermediate, req.Proficiency)

	req = AddSkillRequest{Name: "Rust", Proficiency: "EXPERT"}
	req.Normalize()
	assert.Equal(t, ProficiencyExpert, req.Proficiency)
}
