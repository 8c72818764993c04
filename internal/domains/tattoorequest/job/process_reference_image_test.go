package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/shared"
)

type stubProcessor struct {
	err    error
	gotIDs []uuid.UUID
}

func (p *stubProcessor) ProcessReferenceImage(_ context.Context, id uuid.UUID) error {
	p.gotIDs = append(p.gotIDs, id)
	return p.err
}

func newTask(t *testing.T, id string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(shared.ReferenceImagePayload{TattooRequestID: id})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeProcessReferenceImage, payload)
}

func TestProcessTask_Success(t *testing.T) {
	p := &stubProcessor{}
	h := NewProcessReferenceImageHandler(p)
	id := uuid.New()

	require.NoError(t, h.ProcessTask(context.Background(), newTask(t, id.String())))
	assert.Equal(t, []uuid.UUID{id}, p.gotIDs)
}

func TestProcessTask_SkipsRetry(t *testing.T) {
	tests := []struct {
		name string
		task func(t *testing.T) *asynq.Task
		err  error
	}{
		{"bad json", func(t *testing.T) *asynq.Task { return asynq.NewTask(shared.TypeProcessReferenceImage, []byte("{")) }, nil},
		{"bad uuid", func(t *testing.T) *asynq.Task { return newTask(t, "nope") }, nil},
		{"row gone", func(t *testing.T) *asynq.Task { return newTask(t, uuid.NewString()) }, model.ErrTattooRequestNotFound},
		{"no image", func(t *testing.T) *asynq.Task { return newTask(t, uuid.NewString()) }, model.ErrNoReferenceImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProcessReferenceImageHandler(&stubProcessor{err: tt.err})
			err := h.ProcessTask(context.Background(), tt.task(t))
			assert.ErrorIs(t, err, asynq.SkipRetry)
		})
	}
}

func TestProcessTask_TransientErrorRetries(t *testing.T) {
	h := NewProcessReferenceImageHandler(&stubProcessor{err: errors.New("minio timeout")})

	err := h.ProcessTask(context.Background(), newTask(t, uuid.NewString()))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}
