package service

import (
	"context"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/design/model"
	"tattoo-studio/internal/domains/design/repository"
)

type designService struct {
	repo repository.DesignRepository
	urls URLResolver
}

func NewDesignService(repo repository.DesignRepository, urls URLResolver) ServiceInterface {
	return &designService{repo: repo, urls: urls}
}

func (s *designService) ListForClient(ctx context.Context, clientID uuid.UUID) ([]model.DesignResponse, error) {
	designs, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(designs), nil
}

// ListForTattooRequest không check ownership, caller phải check trước
func (s *designService) ListForTattooRequest(ctx context.Context, tattooRequestID uuid.UUID) ([]model.DesignResponse, error) {
	designs, err := s.repo.ListByTattooRequest(ctx, tattooRequestID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(designs), nil
}

func (s *designService) CountForClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	return s.repo.CountByClient(ctx, clientID)
}

func (s *designService) toResponses(designs []model.Design) []model.DesignResponse {
	resp := make([]model.DesignResponse, 0, len(designs))
	for i := range designs {
		resp = append(resp, designs[i].ToResponse(s.urls.URL))
	}
	return resp
}
