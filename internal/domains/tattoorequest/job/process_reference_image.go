package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/shared"
)

type ReferenceImageProcessor interface {
	ProcessReferenceImage(ctx context.Context, id uuid.UUID) error
}

// ProcessReferenceImageHandler tạo thumbnail cho reference image
type ProcessReferenceImageHandler struct {
	processor ReferenceImageProcessor
}

func NewProcessReferenceImageHandler(processor ReferenceImageProcessor) *ProcessReferenceImageHandler {
	return &ProcessReferenceImageHandler{processor: processor}
}

func (h *ProcessReferenceImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ReferenceImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	id, err := uuid.Parse(payload.TattooRequestID)
	if err != nil {
		return fmt.Errorf("invalid tattoo_request_id %q: %w", payload.TattooRequestID, asynq.SkipRetry)
	}

	log.Info().Str("tattoo_request_id", id.String()).Msg("Rendering reference thumbnail")

	err = h.processor.ProcessReferenceImage(ctx, id)
	switch {
	case err == nil:
		log.Info().Str("tattoo_request_id", id.String()).Msg("Reference thumbnail stored")
		return nil
	case errors.Is(err, model.ErrTattooRequestNotFound), errors.Is(err, model.ErrNoReferenceImage):
		// row đã bị xóa hoặc không có ảnh: retry vô ích
		log.Warn().Err(err).Str("tattoo_request_id", id.String()).Msg("Skipping thumbnail task")
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	default:
		log.Error().Err(err).Str("tattoo_request_id", id.String()).Msg("Thumbnail task failed")
		return fmt.Errorf("process reference image: %w", err)
	}
}
