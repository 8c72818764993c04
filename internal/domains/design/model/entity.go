package model

import (
	"time"

	"github.com/google/uuid"

	artistModel "tattoo-studio/internal/domains/artist/model"
)

// UploadPrefix là prefix object key của design images
const UploadPrefix = "designs"

// Design là bản vẽ artist gửi cho một tattoo request
type Design struct {
	ID                 uuid.UUID
	TattooRequestID    uuid.UUID
	TattooRequestTitle string
	ArtistID           uuid.UUID
	ArtistUsername     string
	ArtistFullName     string
	Image              string // object key trong bucket
	Description        string
	CreatedAt          time.Time
}

type DesignResponse struct {
	ID            uuid.UUID                 `json:"id"`
	TattooRequest TattooRequestRef          `json:"tattoo_request"`
	Artist        artistModel.ArtistSummary `json:"artist"`
	ImageURL      string                    `json:"image_url"`
	Description   string                    `json:"description"`
	CreatedAt     time.Time                 `json:"created_at"`
}

type TattooRequestRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ToResponse cần resolver để đổi object key thành URL
func (d *Design) ToResponse(imageURL func(key string) string) DesignResponse {
	return DesignResponse{
		ID: d.ID,
		TattooRequest: TattooRequestRef{
			ID:    d.TattooRequestID,
			Title: d.TattooRequestTitle,
		},
		Artist: artistModel.ArtistSummary{
			ID:   d.ArtistID,
			Name: artistModel.DisplayName(d.ArtistFullName, d.ArtistUsername),
		},
		ImageURL:    imageURL(d.Image),
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}
