package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

// Profile prints the profile as indented JSON; its shape is owned by the
// backend.
func (a *App) Profile(ctx context.Context) error {
	profile, err := a.profileService.Get(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, profile, "", "  "); err != nil {
		a.printf("%s\n", string(profile))
		return nil
	}
	a.printf("%s\n", buf.String())
	return nil
}

func (a *App) Badges(ctx context.Context) error {
	badges, err := a.badgeService.List(ctx)
	if err != nil {
		return err
	}
	if len(badges) == 0 {
		a.printf("No badges earned yet\n")
		return nil
	}
	for _, b := range badges {
		a.printf("%s\n", formatBadge(b))
	}
	return nil
}

func (a *App) Badge(ctx context.Context, id int64) error {
	b, err := a.badgeService.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printf("%s\n", formatBadge(*b))
	if b.Badge.Description != "" {
		a.printf("  %s\n", b.Badge.Description)
	}
	return nil
}

func formatBadge(b models.UserBadge) string {
	return fmt.Sprintf("#%d %s  earned %s", b.Badge.ID, b.Badge.Name, b.EarnedAt.Format(dateLayout))
}
