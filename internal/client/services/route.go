package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

var ErrEmptyPatch = errors.New("nothing to update")

type RouteService interface {
	List(ctx context.Context) ([]models.Route, error)
	Create(ctx context.Context, in models.RouteInput) (*models.Route, error)
	Update(ctx context.Context, id int64, patch models.RoutePatch) (*models.Route, error)
}

type routeService struct {
	api API
}

func NewRouteService(api API) RouteService {
	return &routeService{api: api}
}

func (r *routeService) List(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if err := r.api.Get(ctx, client.PathRoutes, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *routeService) Create(ctx context.Context, in models.RouteInput) (*models.Route, error) {
	var route models.Route
	if err := r.api.Post(ctx, client.PathRoutes, in, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *routeService) Update(ctx context.Context, id int64, patch models.RoutePatch) (*models.Route, error) {
	if patch == (models.RoutePatch{}) {
		return nil, ErrEmptyPatch
	}

	var route models.Route
	if err := r.api.Patch(ctx, client.PathRoute(id), patch, &route); err != nil {
		return nil, err
	}
	return &route, nil
}
