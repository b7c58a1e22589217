//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// Proficiency represents a self-reported skill level.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Valid reports whether the proficiency is one the backend accepts.
func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	default:
		return false
	}
}

// normalizeProficiency trims and lowercases the input, defaulting to intermediate when empty.
func normalizeProficiency(p Proficiency) Proficiency {
	normalized := Proficiency(strings.ToLower(strings.TrimSpace(string(p))))
	if normalized == "" {
		return ProficiencyIntermediate
	}
	return normalized
}

// Skill is a catalog entry users attach to their profile.
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// UserSkill links a user to a skill with a proficiency level.
type UserSkill struct {
	ID          int64       `json:"id"`
	Skill       Skill       `json:"skill"`
	Proficiency Proficiency `json:"proficiency"`
}

// AddSkillRequest is the payload for POST /api/v1/users/me/skills/.
// Either SkillID or Name must be set; the backend creates the skill
// when only a name is given.
type AddSkillRequest struct {
	SkillID     int64       `json:"skill_id,omitempty"`
	Name        string      `json:"name,omitempty"`
	Category    string      `json:"category,omitempty"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
}

// Normalize applies backend defaults so the client sends a canonical payload.
func (r *AddSkillRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Proficiency = normalizeProficiency(r.Proficiency)
}
