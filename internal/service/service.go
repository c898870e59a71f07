package service

import (
	"errors"

	"github.com/realty-portal/applications-service/internal/repository"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid application status")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Application ApplicationService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Repos *repository.Repositories
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Application: NewApplicationService(deps.Repos.ApplicationRepo),
	}
}
