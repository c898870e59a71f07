package service

import (
	"context"

	"github.com/realty-portal/applications-service/internal/repository"
	"github.com/realty-portal/applications-service/internal/types"
)

// ============================================
// Application Service
// ============================================

type ApplicationService interface {
	ListByEmail(ctx context.Context, email string) ([]*repository.Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
}

func NewApplicationService(applicationRepo repository.ApplicationRepository) ApplicationService {
	return &applicationService{applicationRepo: applicationRepo}
}

// ListByEmail returns the applications filed under email, newest first.
// The match is exact; surrounding whitespace is not trimmed.
func (s *applicationService) ListByEmail(ctx context.Context, email string) ([]*repository.Application, error) {
	if email == "" {
		return nil, ErrInvalidInput
	}
	return s.applicationRepo.FindByEmail(ctx, email)
}

// UpdateStatus moves one application to status and returns its id.
func (s *applicationService) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if id == 0 || status == "" {
		return 0, ErrInvalidInput
	}

	next, err := types.ParseApplicationStatus(status)
	if err != nil {
		return 0, ErrInvalidStatus
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, id, next)
	if err != nil {
		return 0, err
	}
	if !updated {
		return 0, ErrNotFound
	}
	return id, nil
}
