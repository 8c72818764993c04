package service

import (
	"context"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/design/model"
)

type ServiceInterface interface {
	ListForClient(ctx context.Context, clientID uuid.UUID) ([]model.DesignResponse, error)
	ListForTattooRequest(ctx context.Context, tattooRequestID uuid.UUID) ([]model.DesignResponse, error)
	CountForClient(ctx context.Context, clientID uuid.UUID) (int, error)
}

// URLResolver được implement bởi *storage.MinIOStorage
type URLResolver interface {
	URL(key string) string
}
