package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

// InvalidateCacheHandler xóa cache danh sách artist để form booking thấy artist mới ngay
type InvalidateCacheHandler struct {
	invalidator CacheInvalidator
}

func NewInvalidateCacheHandler(invalidator CacheInvalidator) *InvalidateCacheHandler {
	return &InvalidateCacheHandler{invalidator: invalidator}
}

// ProcessTask không đọc payload, task rỗng là đủ
func (h *InvalidateCacheHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if err := h.invalidator.InvalidateCache(ctx); err != nil {
		log.Error().Err(err).Msg("Artist cache invalidation failed")
		return err
	}

	log.Info().Msg("Artist cache invalidated")
	return nil
}
