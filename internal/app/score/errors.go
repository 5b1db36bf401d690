package score

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrArchiveFailed  = errors.New("archive_failed")
)
