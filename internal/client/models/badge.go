package models

import "time"

type Badge struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Created     time.Time `json:"created"`
}

// UserBadge is a badge earned by the current user.
type UserBadge struct {
	Badge    Badge     `json:"badge"`
	EarnedAt time.Time `json:"earned_at"`
}
