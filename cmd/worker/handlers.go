package main

import (
	"github.com/hibiken/asynq"

	artistJob "tattoo-studio/internal/domains/artist/job"
	requestJob "tattoo-studio/internal/domains/tattoorequest/job"
	"tattoo-studio/internal/shared"
	"tattoo-studio/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	processReferenceImage *requestJob.ProcessReferenceImageHandler
	backfillThumbnails    *requestJob.BackfillThumbnailsHandler
	invalidateArtistCache *artistJob.InvalidateCacheHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processReferenceImage: requestJob.NewProcessReferenceImageHandler(c.TattooRequestService),
		backfillThumbnails:    requestJob.NewBackfillThumbnailsHandler(c.TattooRequestService),
		invalidateArtistCache: artistJob.NewInvalidateCacheHandler(c.ArtistService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeProcessReferenceImage, r.processReferenceImage)
	mux.Handle(shared.TypeBackfillThumbnails, r.backfillThumbnails)
	mux.Handle(shared.TypeInvalidateArtistCache, r.invalidateArtistCache)
}
