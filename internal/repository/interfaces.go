package repository

import (
	"context"
	"time"

	"entry-tracker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the credential store operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// CompanyRepositoryInterface defines the company half of the ownership graph store
type CompanyRepositoryInterface interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uint) (*models.Company, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Company, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error)
}

// EntryTaskRepositoryInterface defines the entry task half of the ownership graph store
type EntryTaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.EntryTask) error
	GetByID(ctx context.Context, id uint) (*models.EntryTask, error)
	ListByCompany(ctx context.Context, companyID uint) ([]models.EntryTask, error)
	UpdateContent(ctx context.Context, id uint, content string) (*models.EntryTask, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// SessionRepositoryInterface defines persistence for server-side sessions
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	Touch(ctx context.Context, tokenHash string, seenAt time.Time) error
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now, idleCutoff time.Time) (int64, error)
}
