package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var statusLabels = map[Status]string{
	StatusSubmitted:  "Submitted",
	StatusApproved:   "Approved",
	StatusRejected:   "Rejected",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// TattooRequest là yêu cầu thiết kế client gửi cho studio
type TattooRequest struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	ArtistID    *uuid.UUID
	Title       string
	Description string
	Status      Status

	// object keys trong bucket
	ReferenceImage     *string
	ReferenceThumbnail *string

	// LEFT JOIN artists/users, nil khi chưa assign artist
	ArtistUsername *string
	ArtistFullName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReferenceImageKey: tattoo_requests/<id>/original.<ext>
func ReferenceImageKey(id uuid.UUID, ext string) string {
	return fmt.Sprintf("%s/%s/original.%s", UploadPrefix, id, ext)
}

// ReferenceThumbnailKey: tattoo_requests/<id>/thumbnail.jpg
func ReferenceThumbnailKey(id uuid.UUID) string {
	return fmt.Sprintf("%s/%s/thumbnail.jpg", UploadPrefix, id)
}
