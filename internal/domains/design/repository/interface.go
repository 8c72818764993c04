package repository

import (
	"context"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/design/model"
)

type DesignRepository interface {
	// ListByClient: designs có tattoo request thuộc về client, mới nhất trước
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Design, error)
	ListByTattooRequest(ctx context.Context, tattooRequestID uuid.UUID) ([]model.Design, error)
	CountByClient(ctx context.Context, clientID uuid.UUID) (int, error)
}
