package client

import "fmt"

// Backend endpoints, relative to the base URL.
const (
	PathLogin           = "/api/auth/login/"
	PathRegister        = "/api/auth/register/"
	PathPasswordReset   = "/api/auth/password/reset/"
	PathPasswordConfirm = "/api/auth/password/confirm/"
	PathTokenRefresh    = "/api/auth/token/refresh/"
	PathProfile         = "/api/profile/"
	PathUserBadges      = "/api/user/badges/"
	PathRoutes          = "/routes/"
	PathNotifications   = "/api/notifications/"
	PathFeedbackCreate  = "/api/feedback/create/"
)

func PathUserBadge(id int64) string {
	return fmt.Sprintf("%s%d/", PathUserBadges, id)
}

func PathRoute(id int64) string {
	return fmt.Sprintf("%s%d/", PathRoutes, id)
}

func PathNotificationRead(id int64) string {
	return fmt.Sprintf("%s%d/mark-as-read/", PathNotifications, id)
}
