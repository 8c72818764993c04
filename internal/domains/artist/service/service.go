package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/artist/model"
	"tattoo-studio/internal/domains/artist/repository"
	"tattoo-studio/pkg/cache"
)

const (
	cacheKeyPattern    = "artists:*"
	cacheKeyAllArtists = "artists:all"
	artistListTTL      = 5 * time.Minute
)

type artistService struct {
	repo  repository.ArtistRepository
	cache cache.Cache
}

// NewArtistService: cache có thể nil (chạy không có redis)
func NewArtistService(repo repository.ArtistRepository, c cache.Cache) ServiceInterface {
	return &artistService{repo: repo, cache: c}
}

// ListArtists đọc cache trước, lỗi cache chỉ log và fallback về DB
func (s *artistService) ListArtists(ctx context.Context) ([]model.ArtistResponse, error) {
	if s.cache != nil {
		var cached []model.ArtistResponse
		found, err := s.cache.Get(ctx, cacheKeyAllArtists, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKeyAllArtists).Msg("artist cache read failed")
		} else if found {
			return cached, nil
		}
	}

	artists, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.ArtistResponse, 0, len(artists))
	for i := range artists {
		resp = append(resp, artists[i].ToResponse())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyAllArtists, resp, artistListTTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKeyAllArtists).Msg("artist cache write failed")
		}
	}

	return resp, nil
}

// Exists luôn hỏi DB, không tin cache cho write path
func (s *artistService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *artistService) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeletePattern(ctx, cacheKeyPattern); err != nil {
		return fmt.Errorf("invalidate artist cache: %w", err)
	}
	return nil
}
