package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/domains/tattoorequest/repository"
	"tattoo-studio/internal/infrastructure/storage"
	"tattoo-studio/internal/shared"
)

const msgInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

type tattooRequestService struct {
	repo    repository.TattooRequestRepository
	designs DesignLister
	store   ImageStore
	images  ImageProcessor
	queue   TaskEnqueuer
	now     func() time.Time
}

func NewTattooRequestService(
	repo repository.TattooRequestRepository,
	designs DesignLister,
	store ImageStore,
	images ImageProcessor,
	queue TaskEnqueuer,
) ServiceInterface {
	return &tattooRequestService{
		repo:    repo,
		designs: designs,
		store:   store,
		images:  images,
		queue:   queue,
		now:     time.Now,
	}
}

// =====================================================
// CREATE
// =====================================================

func (s *tattooRequestService) Create(
	ctx context.Context,
	clientID uuid.UUID,
	req model.CreateRequest,
	upload *model.Upload,
) (*model.TattooRequestResponse, error) {
	// Step 1: Validate input
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var format string
	if upload != nil {
		f, err := s.images.ValidateImage(upload.Data)
		if err != nil {
			return nil, validation.Errors{"reference_image": imageError(err)}
		}
		format = f
	}

	// Step 2: Status và client luôn do server quyết định
	now := s.now()
	entity := &model.TattooRequest{
		ID:          uuid.New(),
		ClientID:    clientID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.StatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Step 3: Upload reference image trước khi insert row
	if upload != nil {
		key := model.ReferenceImageKey(entity.ID, storage.Extension(format))
		if err := s.store.Upload(ctx, key, upload.Data, storage.ContentType(format)); err != nil {
			return nil, fmt.Errorf("upload reference image: %w", err)
		}
		entity.ReferenceImage = &key
	}

	// Step 4: Persist
	if err := s.repo.Create(ctx, entity); err != nil {
		if entity.ReferenceImage != nil {
			if delErr := s.store.Delete(ctx, *entity.ReferenceImage); delErr != nil {
				log.Warn().Err(delErr).Str("key", *entity.ReferenceImage).Msg("orphaned reference image")
			}
		}
		return nil, err
	}

	// Step 5: Thumbnail chạy nền, lỗi enqueue không làm fail request
	if entity.ReferenceImage != nil {
		if err := s.enqueueThumbnail(ctx, entity.ID); err != nil {
			log.Warn().Err(err).Str("tattoo_request_id", entity.ID.String()).Msg("failed to enqueue thumbnail task")
		}
	}

	resp := entity.ToResponse(s.store.URL)
	return &resp, nil
}

func (s *tattooRequestService) enqueueThumbnail(ctx context.Context, id uuid.UUID) error {
	payload, err := json.Marshal(shared.ReferenceImagePayload{TattooRequestID: id.String()})
	if err != nil {
		return fmt.Errorf("marshal thumbnail payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeProcessReferenceImage, payload)
	_, err = s.queue.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(3),
		// trùng task id trong lúc task cũ còn trong queue thì asynq từ chối
		asynq.TaskID("thumbnail:"+id.String()),
	)
	return err
}

func imageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrImageTooLarge):
		return errors.New("Image file too large (maximum 5MB).")
	case errors.Is(err, storage.ErrUnsupportedFormat):
		return errors.New("Only JPEG and PNG images are allowed.")
	default:
		return errors.New(msgInvalidImage)
	}
}

// =====================================================
// READ
// =====================================================

func (s *tattooRequestService) GetDetail(ctx context.Context, clientID, id uuid.UUID) (*model.TattooRequestDetail, error) {
	req, err := s.repo.GetByIDForClient(ctx, clientID, id)
	if err != nil {
		return nil, err
	}

	designs, err := s.designs.ListForTattooRequest(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("load designs: %w", err)
	}

	return &model.TattooRequestDetail{
		TattooRequestResponse: req.ToResponse(s.store.URL),
		Designs:               designs,
	}, nil
}

func (s *tattooRequestService) ListRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]model.TattooRequestResponse, error) {
	requests, err := s.repo.ListRecentByClient(ctx, clientID, limit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(requests), nil
}

func (s *tattooRequestService) ListApproved(ctx context.Context, clientID uuid.UUID) ([]model.TattooRequestResponse, error) {
	requests, err := s.repo.ListByClientAndStatus(ctx, clientID, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	return s.toResponses(requests), nil
}

func (s *tattooRequestService) GetApproved(ctx context.Context, clientID, id uuid.UUID) (*model.TattooRequestResponse, error) {
	req, err := s.repo.GetByIDForClient(ctx, clientID, id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.StatusApproved {
		return nil, model.ErrTattooRequestNotFound
	}
	resp := req.ToResponse(s.store.URL)
	return &resp, nil
}

func (s *tattooRequestService) CountForClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	return s.repo.CountByClient(ctx, clientID)
}

func (s *tattooRequestService) toResponses(requests []model.TattooRequest) []model.TattooRequestResponse {
	resp := make([]model.TattooRequestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, requests[i].ToResponse(s.store.URL))
	}
	return resp
}

// =====================================================
// THUMBNAIL (worker)
// =====================================================

func (s *tattooRequestService) ProcessReferenceImage(ctx context.Context, id uuid.UUID) error {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.ReferenceImage == nil {
		return model.ErrNoReferenceImage
	}

	original, err := s.store.Download(ctx, *req.ReferenceImage)
	if err != nil {
		return fmt.Errorf("download reference image: %w", err)
	}

	thumb, err := s.images.Thumbnail(original, storage.ThumbnailSize)
	if err != nil {
		return fmt.Errorf("render thumbnail: %w", err)
	}

	key := model.ReferenceThumbnailKey(id)
	if err := s.store.Upload(ctx, key, thumb, "image/jpeg"); err != nil {
		return fmt.Errorf("upload thumbnail: %w", err)
	}

	return s.repo.SetReferenceThumbnail(ctx, id, key)
}

func (s *tattooRequestService) BackfillThumbnails(ctx context.Context, limit int) (int, error) {
	ids, err := s.repo.ListMissingThumbnails(ctx, limit)
	if err != nil {
		return 0, err
	}

	enqueued := 0
	for _, id := range ids {
		err := s.enqueueThumbnail(ctx, id)
		switch {
		case err == nil:
			enqueued++
		case errors.Is(err, asynq.ErrTaskIDConflict):
			// task trước đó vẫn đang chờ xử lý
		default:
			return enqueued, fmt.Errorf("enqueue thumbnail %s: %w", id, err)
		}
	}
	return enqueued, nil
}
