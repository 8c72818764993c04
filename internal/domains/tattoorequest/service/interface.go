package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	designModel "tattoo-studio/internal/domains/design/model"
	"tattoo-studio/internal/domains/tattoorequest/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, clientID uuid.UUID, req model.CreateRequest, upload *model.Upload) (*model.TattooRequestResponse, error)
	GetDetail(ctx context.Context, clientID, id uuid.UUID) (*model.TattooRequestDetail, error)
	ListRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]model.TattooRequestResponse, error)
	CountForClient(ctx context.Context, clientID uuid.UUID) (int, error)

	// ListApproved là tập request client được phép chọn khi book appointment
	ListApproved(ctx context.Context, clientID uuid.UUID) ([]model.TattooRequestResponse, error)
	// GetApproved trả ErrTattooRequestNotFound nếu không thuộc client hoặc chưa approved
	GetApproved(ctx context.Context, clientID, id uuid.UUID) (*model.TattooRequestResponse, error)

	// ProcessReferenceImage được gọi từ worker để tạo thumbnail
	ProcessReferenceImage(ctx context.Context, id uuid.UUID) error
	// BackfillThumbnails enqueue lại thumbnail task cho request bị sót, trả số task đã enqueue
	BackfillThumbnails(ctx context.Context, limit int) (int, error)
}

// ImageStore được implement bởi *storage.MinIOStorage
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// ImageProcessor được implement bởi *storage.ImageProcessor
type ImageProcessor interface {
	ValidateImage(data []byte) (string, error)
	Thumbnail(data []byte, size int) ([]byte, error)
}

// TaskEnqueuer được implement bởi *asynq.Client
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type DesignLister interface {
	ListForTattooRequest(ctx context.Context, tattooRequestID uuid.UUID) ([]designModel.DesignResponse, error)
}
