package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/collabhub/hubclient/internal/domain/model"
)

// Me fetches the identity for the client's current token.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	if err := c.get(ctx, "/api/v1/users/me/", &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// UpdateMe applies a partial update to the current user's record.
func (c *Client) UpdateMe(ctx context.Context, fields map[string]any) (model.User, error) {
	var user model.User
	if err := c.patch(ctx, "/api/v1/users/me/", fields, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// SearchUsers lists users matching the given search term (name/email).
func (c *Client) SearchUsers(ctx context.Context, search string) ([]model.User, error) {
	path := "/api/v1/users/"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	return getList[model.User](ctx, c, path)
}

// MySkills lists the current user's skills with proficiency.
func (c *Client) MySkills(ctx context.Context) ([]model.UserSkill, error) {
	return getList[model.UserSkill](ctx, c, "/api/v1/users/me/skills/")
}

// AddSkill attaches a skill to the current user. The backend creates the
// skill when only a name is supplied.
func (c *Client) AddSkill(ctx context.Context, req model.AddSkillRequest) (model.UserSkill, error) {
	req.Normalize()
	var out model.UserSkill
	if err := c.post(ctx, "/api/v1/users/me/skills/", req, &out); err != nil {
		return model.UserSkill{}, err
	}
	return out, nil
}

// UpdateSkillProficiency changes the proficiency on an existing user skill.
func (c *Client) UpdateSkillProficiency(ctx context.Context, userSkillID int64, p model.Proficiency) error {
	path := fmt.Sprintf("/api/v1/users/me/skills/%d/", userSkillID)
	payload := map[string]model.Proficiency{"proficiency": p}
	return c.patch(ctx, path, payload, nil)
}

// RemoveSkill detaches a skill from the current user.
func (c *Client) RemoveSkill(ctx context.Context, userSkillID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/users/me/skills/%d/", userSkillID))
}
