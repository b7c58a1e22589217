package api

import (
	"context"
	"fmt"

	"github.com/collabhub/hubclient/internal/domain/model"
)

// Notifications fetches the caller's notification list, newest first.
// The backend returns at most the 50 most recent entries.
func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	return getList[model.Notification](ctx, c, "/api/v1/notifications/")
}

// MarkNotificationRead marks a single notification as read. Idempotent.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/notifications/%d/read/", id), nil, nil)
}

// MarkAllNotificationsRead marks every unread notification as read via the
// bulk endpoint. Passing ids restricts the operation to those entries.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, ids ...int64) error {
	payload := map[string][]int64{"ids": ids}
	if ids == nil {
		payload["ids"] = []int64{}
	}
	return c.post(ctx, "/api/v1/collaborations/notifications/read/", payload, nil)
}

// UnreadNotificationCount asks the backend for the unread count directly,
// used by scenarios to cross-check the client-side derived value.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/api/v1/collaborations/notifications/count/", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
