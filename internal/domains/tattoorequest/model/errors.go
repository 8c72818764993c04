package model

import "errors"

var (
	ErrTattooRequestNotFound = errors.New("tattoo request not found")
	ErrNoReferenceImage      = errors.New("tattoo request has no reference image")
)
