package models

import "time"

// Route is a planned trip as returned by GET /routes/.
type Route struct {
	ID            int64      `json:"id,omitempty"`
	Title         string     `json:"title"`
	StartPoint    Point      `json:"start_point"`
	Destination   Point      `json:"destination"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	IsShared      bool       `json:"is_shared"`
	Version       int        `json:"version,omitempty"`
	Collaborators []string   `json:"collaborators,omitempty"`
	Waypoints     []Waypoint `json:"waypoints"`
	ShareLink     string     `json:"share_link,omitempty"`
	ShareToken    string     `json:"share_token,omitempty"`
}

type Waypoint struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	Order       int        `json:"order"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	ArrivalTime *time.Time `json:"arrival_time,omitempty"`
}

// RouteInput is the body of POST /routes/.
type RouteInput struct {
	Title       string          `json:"title"`
	StartPoint  Point           `json:"start_point"`
	Destination Point           `json:"destination"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	IsShared    bool            `json:"is_shared"`
	Waypoints   []WaypointInput `json:"waypoints"`
}

type WaypointInput struct {
	Name      string  `json:"name"`
	Order     int     `json:"order"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Stop is a named intermediate point entered by the user.
type Stop struct {
	Name string
	At   Point
}

// NewRouteInput builds a creation payload; stops are numbered from 1 in the
// order given.
func NewRouteInput(title string, start, dest Point, from, to time.Time, shared bool, stops []Stop) RouteInput {
	wps := make([]WaypointInput, 0, len(stops))
	for i, s := range stops {
		wps = append(wps, WaypointInput{
			Name:      s.Name,
			Order:     i + 1,
			Latitude:  s.At.Lat,
			Longitude: s.At.Lng,
		})
	}

	return RouteInput{
		Title:       title,
		StartPoint:  start,
		Destination: dest,
		StartDate:   from.UTC(),
		EndDate:     to.UTC(),
		IsShared:    shared,
		Waypoints:   wps,
	}
}

// RoutePatch is the body of PATCH /routes/{id}/; nil fields are left as is.
type RoutePatch struct {
	Title       *string    `json:"title,omitempty"`
	StartPoint  *Point     `json:"start_point,omitempty"`
	Destination *Point     `json:"destination,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsShared    *bool      `json:"is_shared,omitempty"`
}
