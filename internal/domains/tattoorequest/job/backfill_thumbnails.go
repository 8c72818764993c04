package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/shared"
)

const defaultBackfillLimit = 50

type ThumbnailBackfiller interface {
	BackfillThumbnails(ctx context.Context, limit int) (int, error)
}

// BackfillThumbnailsHandler chạy theo lịch, enqueue lại thumbnail cho request bị sót
type BackfillThumbnailsHandler struct {
	backfiller ThumbnailBackfiller
}

func NewBackfillThumbnailsHandler(backfiller ThumbnailBackfiller) *BackfillThumbnailsHandler {
	return &BackfillThumbnailsHandler{backfiller: backfiller}
}

func (h *BackfillThumbnailsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.BackfillThumbnailsPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	if payload.Limit <= 0 {
		payload.Limit = defaultBackfillLimit
	}

	n, err := h.backfiller.BackfillThumbnails(ctx, payload.Limit)
	if err != nil {
		log.Error().Err(err).Int("enqueued", n).Msg("Thumbnail backfill failed")
		return err
	}

	if n > 0 {
		log.Info().Int("enqueued", n).Msg("Thumbnail backfill enqueued tasks")
	}
	return nil
}
