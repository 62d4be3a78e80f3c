// Package models defines the wire models exchanged with the PlanAndGo backend:
// auth payloads, the user profile, routes with WKT points, badges,
// notifications and feedback.
package models
