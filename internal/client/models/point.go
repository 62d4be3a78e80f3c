package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidWKT = errors.New("invalid WKT point")

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// WKT renders p as POINT(<lng> <lat>), longitude first, using the shortest
// decimal form of each value.
func (p Point) WKT() string {
	return "POINT(" + formatCoord(p.Lng) + " " + formatCoord(p.Lat) + ")"
}

func (p Point) String() string {
	return p.WKT()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tolerates GEOS output ("POINT (x y)") and an EWKT SRID prefix.
var wktPointRe = regexp.MustCompile(`(?i)^\s*(?:SRID=\d+;\s*)?POINT\s*\(\s*([-+]?\d+(?:\.\d*)?)\s+([-+]?\d+(?:\.\d*)?)\s*\)\s*$`)

// ParsePoint reads a WKT point. Signed coordinates are accepted.
func ParsePoint(s string) (Point, error) {
	m := wktPointRe.FindStringSubmatch(s)
	if m == nil {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidWKT, s)
	}

	lng, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrInvalidWKT, s, err)
	}
	lat, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrInvalidWKT, s, err)
	}

	return Point{Lat: lat, Lng: lng}, nil
}

// The web form's client-side guard. It has no sign support, so negative
// coordinates are rejected.
// TODO: allow a leading '-' once the web form and backend agree on it.
var consumerWKTRe = regexp.MustCompile(`(?i)^POINT\(\d+\.?\d* \d+\.?\d*\)$`)

// IsValidWKTPoint reports whether s passes the web form's WKT format check.
func IsValidWKTPoint(s string) bool {
	return consumerWKTRe.MatchString(s)
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.WKT())
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: expected string: %v", ErrInvalidWKT, err)
	}
	parsed, err := ParsePoint(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
