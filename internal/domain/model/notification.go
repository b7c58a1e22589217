//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// NotificationType categorizes a notification record.
type NotificationType string

const (
	NotificationTypeApplication NotificationType = "application"
	NotificationTypeInvitation  NotificationType = "invitation"
	NotificationTypeConnection  NotificationType = "connection"
	NotificationTypeMessage     NotificationType = "message"
	NotificationTypeSystem      NotificationType = "system"
)

// Notification is one entry from GET /api/v1/notifications/.
// The contract guarantees at least ID and IsRead; everything else is
// carried through for display.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type,omitempty"`
	Title     string           `json:"title,omitempty"`
	Message   string           `json:"message,omitempty"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt *time.Time       `json:"created_at,omitempty"`
}

// CountUnread returns the number of notifications with IsRead=false.
func CountUnread(notifications []Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
