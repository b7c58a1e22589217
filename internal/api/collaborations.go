package api

import (
	"context"
	"fmt"

	"github.com/collabhub/hubclient/internal/domain/model"
)

// CreateOpportunity posts a new opportunity.
func (c *Client) CreateOpportunity(ctx context.Context, req model.CreateOpportunityRequest) (model.Opportunity, error) {
	if err := req.Validate(); err != nil {
		return model.Opportunity{}, err
	}
	var out model.Opportunity
	if err := c.post(ctx, "/api/v1/opportunities/", req, &out); err != nil {
		return model.Opportunity{}, err
	}
	return out, nil
}

// Opportunities lists open opportunities.
func (c *Client) Opportunities(ctx context.Context) ([]model.Opportunity, error) {
	return getList[model.Opportunity](ctx, c, "/api/v1/opportunities/")
}

// Apply submits an application to an opportunity for the current user.
func (c *Client) Apply(ctx context.Context, req model.CreateApplicationRequest) (model.Application, error) {
	if err := req.Validate(); err != nil {
		return model.Application{}, err
	}
	var out model.Application
	if err := c.post(ctx, "/api/v1/collaborations/applications/", req, &out); err != nil {
		return model.Application{}, err
	}
	return out, nil
}

// MyApplications lists the current user's applications.
func (c *Client) MyApplications(ctx context.Context) ([]model.Application, error) {
	return getList[model.Application](ctx, c, "/api/v1/collaborations/applications/")
}

// OpportunityApplications lists the applications submitted to an
// opportunity. Only the opportunity owner can read this collection.
func (c *Client) OpportunityApplications(ctx context.Context, opportunityID int64) ([]model.Application, error) {
	path := fmt.Sprintf("/api/v1/collaborations/opportunities/%d/applications/", opportunityID)
	return getList[model.Application](ctx, c, path)
}

// UpdateApplicationStatus moves an application through review.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID int64, status model.ApplicationStatus) error {
	path := fmt.Sprintf("/api/v1/collaborations/applications/%d/status/", applicationID)
	payload := map[string]model.ApplicationStatus{"status": status}
	return c.patch(ctx, path, payload, nil)
}
