package services

import (
	"context"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

type ProfileService interface {
	Get(ctx context.Context) (models.UserProfile, error)
	Update(ctx context.Context, fields map[string]any) (models.UserProfile, error)
}

type profileService struct {
	api API
}

func NewProfileService(api API) ProfileService {
	return &profileService{api: api}
}

func (p *profileService) Get(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := p.api.Get(ctx, client.PathProfile, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update applies a partial update. The cached user is left alone: the
// profile and the login user are different payloads.
func (p *profileService) Update(ctx context.Context, fields map[string]any) (models.UserProfile, error) {
	var resp models.ProfileUpdateResponse
	if err := p.api.Patch(ctx, client.PathProfile, fields, &resp); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}
