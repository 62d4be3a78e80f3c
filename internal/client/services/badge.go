package services

import (
	"context"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

type BadgeService interface {
	List(ctx context.Context) ([]models.UserBadge, error)
	Get(ctx context.Context, id int64) (*models.UserBadge, error)
}

type badgeService struct {
	api API
}

func NewBadgeService(api API) BadgeService {
	return &badgeService{api: api}
}

// List returns the badges earned by the current user.
func (b *badgeService) List(ctx context.Context) ([]models.UserBadge, error) {
	var badges []models.UserBadge
	if err := b.api.Get(ctx, client.PathUserBadges, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}

func (b *badgeService) Get(ctx context.Context, id int64) (*models.UserBadge, error) {
	var badge models.UserBadge
	if err := b.api.Get(ctx, client.PathUserBadge(id), &badge); err != nil {
		return nil, err
	}
	return &badge, nil
}
