package models

import "time"

type NotificationCategory string

const (
	CategoryRouteUpdate NotificationCategory = "route_update"
	CategoryReminder    NotificationCategory = "reminder"
	CategoryPremium     NotificationCategory = "premium"
	CategoryBadge       NotificationCategory = "badge"
)

type Notification struct {
	ID        int64                `json:"id"`
	Message   string               `json:"message"`
	Category  NotificationCategory `json:"category"`
	IsRead    bool                 `json:"is_read"`
	CreatedAt time.Time            `json:"created_at"`
}

type NotificationInput struct {
	Message  string               `json:"message"`
	Category NotificationCategory `json:"category"`
}

// FeedbackInput is the body of a feedback submission. Route and TravelBuddy
// are optional references.
type FeedbackInput struct {
	Message     string `json:"message"`
	Route       *int64 `json:"route"`
	TravelBuddy *int64 `json:"travel_buddy"`
}
