package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

const dateLayout = "2006-01-02"

var (
	errMissingID   = errors.New("missing id")
	errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errMissingID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// parseOptionalID returns nil for blank input.
func parseOptionalID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := parseID([]string{s})
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parsePoint accepts "lat,lng" or a WKT point. WKT input has to pass the
// same format check as the web form.
func parsePoint(s string) (models.Point, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToUpper(s), "POINT") {
		if !models.IsValidWKTPoint(s) {
			return models.Point{}, fmt.Errorf("%w: %q, expected POINT(lng lat)", models.ErrInvalidWKT, s)
		}
		return models.ParsePoint(s)
	}

	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return models.Point{}, fmt.Errorf("invalid point %q, expected lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return models.Point{}, fmt.Errorf("invalid latitude %q", latStr)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return models.Point{}, fmt.Errorf("invalid longitude %q", lngStr)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.Point{}, fmt.Errorf("point %q out of range", s)
	}
	return models.Point{Lat: lat, Lng: lng}, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, s)
	}
	return d, nil
}

// parseStop reads "name; lat,lng".
func parseStop(s string) (models.Stop, error) {
	name, at, ok := strings.Cut(s, ";")
	if !ok || strings.TrimSpace(name) == "" {
		return models.Stop{}, fmt.Errorf("invalid stop %q, expected name; lat,lng", s)
	}
	p, err := parsePoint(at)
	if err != nil {
		return models.Stop{}, err
	}
	return models.Stop{Name: strings.TrimSpace(name), At: p}, nil
}
