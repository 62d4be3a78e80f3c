package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

// Routes lists the user's routes.
func (a *App) Routes(ctx context.Context) error {
	routes, err := a.routeService.List(ctx)
	if err != nil {
		return err
	}
	if len(routes) == 0 {
		a.printf("No routes yet. Use 'addroute' to plan one.\n")
		return nil
	}
	for _, r := range routes {
		a.printf("%s\n", formatRoute(r))
	}
	return nil
}

func formatRoute(r models.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s  %s..%s  %s -> %s",
		r.ID, r.Title,
		r.StartDate.Format(dateLayout), r.EndDate.Format(dateLayout),
		r.StartPoint.WKT(), r.Destination.WKT())
	if n := len(r.Waypoints); n > 0 {
		fmt.Fprintf(&b, "  %d stop(s)", n)
	}
	if r.IsShared {
		b.WriteString("  [shared]")
	}
	return b.String()
}

// AddRoute walks the user through creating a route.
func (a *App) AddRoute(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}

	start, err := a.askPoint("Start point (lat,lng or POINT(lng lat))")
	if err != nil {
		return err
	}
	dest, err := a.askPoint("Destination (lat,lng or POINT(lng lat))")
	if err != nil {
		return err
	}

	from, err := a.askDate("Start date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	to, err := a.askDate("End date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fmt.Errorf("end date %s is before start date %s", to.Format(dateLayout), from.Format(dateLayout))
	}

	shared, err := getSimpleText(a.reader, "Share with collaborators? (y/n)", a.out)
	if err != nil {
		return err
	}

	var stops []models.Stop
	for {
		line, err := getSimpleText(a.reader, "Stop as 'name; lat,lng' (empty to finish)", a.out)
		if err != nil || line == "" {
			break
		}
		stop, err := parseStop(line)
		if err != nil {
			a.printf("%v\n", err)
			continue
		}
		stops = append(stops, stop)
	}

	in := models.NewRouteInput(title, start, dest, from, to, isYes(shared), stops)
	route, err := a.routeService.Create(ctx, in)
	if err != nil {
		return err
	}

	a.printf("Created route #%d\n", route.ID)
	return nil
}

// EditRoute renames or reschedules a route. Blank answers keep the current
// value.
func (a *App) EditRoute(ctx context.Context, id int64) error {
	var patch models.RoutePatch

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}

	for _, f := range []struct {
		prompt string
		dst    **models.Point
	}{
		{"New start point (empty to keep)", &patch.StartPoint},
		{"New destination (empty to keep)", &patch.Destination},
	} {
		s, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if s == "" {
			continue
		}
		p, err := parsePoint(s)
		if err != nil {
			return err
		}
		*f.dst = &p
	}

	route, err := a.routeService.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	a.printf("Updated: %s\n", formatRoute(*route))
	return nil
}

func (a *App) askPoint(prompt string) (models.Point, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.Point{}, err
	}
	return parsePoint(s)
}

func (a *App) askDate(prompt string) (time.Time, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return time.Time{}, err
	}
	return parseDate(s)
}
