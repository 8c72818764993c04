package model

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	// tattoo request không thuộc client hoặc không còn approved lúc insert
	ErrTattooRequestNotSelectable = errors.New("tattoo request not selectable")
)
