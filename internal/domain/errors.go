package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrDuplicateKey         = errors.New("key already exists")
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrSubscriptionRequired = errors.New("paid subscription required")
	ErrUnauthorized         = errors.New("unauthorized")
)
