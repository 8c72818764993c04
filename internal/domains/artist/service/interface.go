package service

import (
	"context"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/artist/model"
)

type ServiceInterface interface {
	ListArtists(ctx context.Context) ([]model.ArtistResponse, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// InvalidateCache xóa mọi key artists:*, gọi khi backoffice thay đổi artist
	InvalidateCache(ctx context.Context) error
}
