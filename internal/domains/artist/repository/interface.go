package repository

import (
	"context"

	"github.com/google/uuid"

	"tattoo-studio/internal/domains/artist/model"
)

type ArtistRepository interface {
	List(ctx context.Context) ([]model.Artist, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
