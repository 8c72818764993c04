package repository

import (
	"context"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/tattoorequest/model"
)

// TattooRequestRepository: mọi read của client đều scope theo clientID
type TattooRequestRepository interface {
	Create(ctx context.Context, req *model.TattooRequest) error
	GetByIDForClient(ctx context.Context, clientID, id uuid.UUID) (*model.TattooRequest, error)
	ListRecentByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]model.TattooRequest, error)
	ListByClientAndStatus(ctx context.Context, clientID uuid.UUID, status model.Status) ([]model.TattooRequest, error)
	CountByClient(ctx context.Context, clientID uuid.UUID) (int, error)

	// dùng bởi thumbnail worker, không scope theo client
	GetByID(ctx context.Context, id uuid.UUID) (*model.TattooRequest, error)
	SetReferenceThumbnail(ctx context.Context, id uuid.UUID, key string) error
	// ListMissingThumbnails: request có ảnh nhưng chưa có thumbnail, cũ nhất trước
	ListMissingThumbnails(ctx context.Context, limit int) ([]uuid.UUID, error)
}
