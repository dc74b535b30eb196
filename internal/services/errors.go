package services

import "errors"

var (
	// ErrNoTextExtracted means the PDF yielded no text, usually a scanned document.
	ErrNoTextExtracted = errors.New("no text extracted (scanned PDF?)")
	ErrUnknownRole     = errors.New("unknown role_key")
	ErrRoleRequired    = errors.New("role_key or role_description required")
	ErrInvalidFileType = errors.New("invalid file type, only PDF is accepted")
)
