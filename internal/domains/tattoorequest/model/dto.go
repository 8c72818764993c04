package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	artistModel "tattoo-studio/internal/domains/artist/model"
	designModel "tattoo-studio/internal/domains/design/model"
)

// CreateRequest: status và client không nằm trong input, service tự set
type CreateRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// Normalize trim whitespace như form field
func (r *CreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("This field is required."),
			validation.RuneLength(TitleMinLength, 0).Error("Title must be at least 5 characters long."),
			validation.RuneLength(0, TitleMaxLength).Error("Ensure this value has at most 200 characters."),
		),
		validation.Field(&r.Description,
			validation.Required.Error("This field is required."),
			validation.RuneLength(DescriptionMinLength, 0).Error("Please provide a more detailed description (at least 20 characters)."),
		),
	)
}

// Upload là file reference image đã đọc vào memory
type Upload struct {
	Filename string
	Data     []byte
}

type TattooRequestResponse struct {
	ID                    uuid.UUID                  `json:"id"`
	Title                 string                     `json:"title"`
	Description           string                     `json:"description"`
	Status                Status                     `json:"status"`
	StatusLabel           string                     `json:"status_label"`
	Artist                *artistModel.ArtistSummary `json:"artist"`
	ReferenceImageURL     string                     `json:"reference_image_url,omitempty"`
	ReferenceThumbnailURL string                     `json:"reference_thumbnail_url,omitempty"`
	CreatedAt             time.Time                  `json:"created_at"`
	UpdatedAt             time.Time                  `json:"updated_at"`
}

type TattooRequestDetail struct {
	TattooRequestResponse
	Designs []designModel.DesignResponse `json:"designs"`
}

// ToResponse cần resolver để đổi object key thành URL
func (r *TattooRequest) ToResponse(url func(key string) string) TattooRequestResponse {
	resp := TattooRequestResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		StatusLabel: r.Status.Label(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.ArtistID != nil {
		resp.Artist = &artistModel.ArtistSummary{
			ID:   *r.ArtistID,
			Name: artistModel.DisplayName(deref(r.ArtistFullName), deref(r.ArtistUsername)),
		}
	}
	if r.ReferenceImage != nil {
		resp.ReferenceImageURL = url(*r.ReferenceImage)
	}
	if r.ReferenceThumbnail != nil {
		resp.ReferenceThumbnailURL = url(*r.ReferenceThumbnail)
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
