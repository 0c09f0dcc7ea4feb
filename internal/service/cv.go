package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/store"
)

const maxCVSize = 5 * 1024 * 1024 // 5MB

var allowedCVTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// CVService stores one uploaded CV per user.
type CVService struct {
	store domain.Store
}

// NewCVService creates a new CVService.
func NewCVService(store domain.Store) *CVService {
	return &CVService{store: store}
}

// Upload validates and stores a CV, replacing any earlier upload.
func (s *CVService) Upload(ctx context.Context, email, filename, contentType string, lastModified int64, data []byte) (*domain.CVUpload, error) {
	email = domain.NormalizeEmail(email)
	if filename == "" || len(data) == 0 {
		return nil, fmt.Errorf("%w: a CV file is required", domain.ErrInvalidInput)
	}
	if !allowedCVTypes[contentType] {
		return nil, fmt.Errorf("%w: CV must be a PDF, Word or text document", domain.ErrInvalidInput)
	}
	if len(data) > maxCVSize {
		return nil, fmt.Errorf("%w: CV exceeds 5MB limit", domain.ErrInvalidInput)
	}
	if _, err := s.store.Users().Find(ctx, email); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	previous, err := s.Get(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	key := "cv-uploads/" + uuid.NewString()
	if err := s.store.Files().Save(ctx, key, data); err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	cv := &domain.CVUpload{
		Name:         filename,
		Size:         int64(len(data)),
		LastModified: lastModified,
		ContentType:  contentType,
		StorageKey:   key,
	}
	if err := store.SetJSON(ctx, s.store.Values(), domain.CVValueKey(email), cv); err != nil {
		// Best-effort cleanup of the stored file.
		s.store.Files().Delete(ctx, key)
		return nil, fmt.Errorf("save CV metadata: %w", err)
	}

	if previous != nil && previous.StorageKey != "" {
		if err := s.store.Files().Delete(ctx, previous.StorageKey); err != nil {
			slog.Warn("delete replaced CV", "key", previous.StorageKey, "error", err)
		}
	}
	return cv, nil
}

// Get returns the metadata of the user's CV.
func (s *CVService) Get(ctx context.Context, email string) (*domain.CVUpload, error) {
	var cv domain.CVUpload
	if err := store.GetJSON(ctx, s.store.Values(), domain.CVValueKey(domain.NormalizeEmail(email)), &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// File returns the bytes and content type of the user's CV.
func (s *CVService) File(ctx context.Context, email string) ([]byte, *domain.CVUpload, error) {
	cv, err := s.Get(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.store.Files().Get(ctx, cv.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("get file: %w", err)
	}
	return data, cv, nil
}
