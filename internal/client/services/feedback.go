package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

var ErrEmptyFeedback = errors.New("feedback message is empty")

type FeedbackService interface {
	// Submit sends feedback, optionally about a route and/or a travel buddy.
	Submit(ctx context.Context, message string, routeID, buddyID *int64) error
}

type feedbackService struct {
	api API
}

func NewFeedbackService(api API) FeedbackService {
	return &feedbackService{api: api}
}

func (f *feedbackService) Submit(ctx context.Context, message string, routeID, buddyID *int64) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyFeedback
	}

	in := models.FeedbackInput{Message: message, Route: routeID, TravelBuddy: buddyID}
	return f.api.Post(ctx, client.PathFeedbackCreate, in, nil)
}
