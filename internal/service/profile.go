package service

import (
	"context"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// ProfileService serves the authenticated user's own account record.
type ProfileService struct {
	client *transport.Client
	logger *logger.Logger
}

func NewProfileService(client *transport.Client, log *logger.Logger) *ProfileService {
	return &ProfileService{client: client, logger: log}
}

// Me returns the caller's current profile.
func (s *ProfileService) Me(ctx context.Context) (*models.UserProfile, error) {
	raw, err := s.client.Get(ctx, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[models.UserProfile](raw)
}

// Update replaces the editable profile fields and returns the stored record.
func (s *ProfileService) Update(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	raw, err := s.client.Put(ctx, "/users/me", profile)
	if err != nil {
		return nil, err
	}

	return decodeOne[models.UserProfile](raw)
}
