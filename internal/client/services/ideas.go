package services

import (
	"context"

	"github.com/dmitrijs2005/foundrmate/internal/client/client"
	"github.com/dmitrijs2005/foundrmate/internal/client/models"
	"github.com/dmitrijs2005/foundrmate/internal/client/repositories/metadata"
)

type IdeaService interface {
	Submit(ctx context.Context, message string) (*models.Analysis, error)
}

type ideaService struct {
	client client.Client
	auth   AuthService
	meta   metadata.Repository
}

func NewIdeaService(c client.Client, auth AuthService, m metadata.Repository) IdeaService {
	return &ideaService{client: c, auth: auth, meta: m}
}

func (s *ideaService) Submit(ctx context.Context, message string) (*models.Analysis, error) {
	sess, err := s.auth.Current(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.client.SubmitIdea(ctx, sess.Token, message)
	if err != nil {
		return nil, dropExpired(ctx, s.meta, err)
	}
	return a, nil
}
