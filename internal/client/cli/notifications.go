package cli

import (
	"context"
	"time"
)

func (a *App) Notifications(ctx context.Context) error {
	items, err := a.notificationService.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		a.printf("No notifications\n")
		return nil
	}

	unread := 0
	for _, n := range items {
		mark := "[x]"
		if !n.IsRead {
			mark = "[ ]"
			unread++
		}
		a.printf("%s #%d %-12s %s  %s\n", mark, n.ID, n.Category, n.CreatedAt.Local().Format(time.DateTime), n.Message)
	}
	a.printf("%d unread\n", unread)
	return nil
}

func (a *App) MarkRead(ctx context.Context, id int64) error {
	if err := a.notificationService.MarkAsRead(ctx, id); err != nil {
		return err
	}
	a.printf("Notification #%d marked as read\n", id)
	return nil
}

// Feedback sends a free-text message, optionally about a route or a travel
// buddy.
func (a *App) Feedback(ctx context.Context) error {
	message, err := GetMultiline(a.reader, "Your feedback", a.out)
	if err != nil {
		return err
	}

	routeIn, err := getSimpleText(a.reader, "Route id (optional)", a.out)
	if err != nil {
		return err
	}
	routeID, err := parseOptionalID(routeIn)
	if err != nil {
		return err
	}

	buddyIn, err := getSimpleText(a.reader, "Travel buddy id (optional)", a.out)
	if err != nil {
		return err
	}
	buddyID, err := parseOptionalID(buddyIn)
	if err != nil {
		return err
	}

	if err := a.feedbackService.Submit(ctx, message, routeID, buddyID); err != nil {
		return err
	}
	a.printf("Thanks for your feedback!\n")
	return nil
}
