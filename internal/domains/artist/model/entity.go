package model

import (
	"github.com/google/uuid"
)

// Artist là profile gắn 1-1 với một user
type Artist struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Username       string
	FullName       string
	Bio            string
	Specialization string
}

// DisplayName: full name của user, fallback username
func (a *Artist) DisplayName() string {
	return DisplayName(a.FullName, a.Username)
}

func DisplayName(fullName, username string) string {
	if fullName != "" {
		return fullName
	}
	return username
}

func (a *Artist) ToResponse() ArtistResponse {
	return ArtistResponse{
		ID:             a.ID,
		Name:           a.DisplayName(),
		Bio:            a.Bio,
		Specialization: a.Specialization,
	}
}

type ArtistResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
}

// ArtistSummary được nhúng vào request/appointment/design responses
type ArtistSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
