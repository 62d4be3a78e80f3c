package services

import (
	"context"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
	Create(ctx context.Context, in models.NotificationInput) (*models.Notification, error)
}

type notificationService struct {
	api API
}

func NewNotificationService(api API) NotificationService {
	return &notificationService{api: api}
}

func (n *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	var items []models.Notification
	if err := n.api.Get(ctx, client.PathNotifications, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkAsRead sends an empty PATCH; the response body is ignored.
func (n *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	return n.api.Patch(ctx, client.PathNotificationRead(id), nil, nil)
}

func (n *notificationService) Create(ctx context.Context, in models.NotificationInput) (*models.Notification, error) {
	var item models.Notification
	if err := n.api.Post(ctx, client.PathNotifications, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
