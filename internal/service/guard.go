package service

import (
	"context"
	"errors"
	"fmt"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"
	"entry-tracker-backend/internal/repository"

	"gorm.io/gorm"
)

// OwnershipGuard confirms that a resource's ownership chain ends at the caller.
// A missing resource and one owned by someone else both yield ErrResourceNotFound.
type OwnershipGuard struct {
	companyRepo repository.CompanyRepositoryInterface
	taskRepo    repository.EntryTaskRepositoryInterface
}

// NewOwnershipGuard creates a new ownership guard
func NewOwnershipGuard(companyRepo repository.CompanyRepositoryInterface, taskRepo repository.EntryTaskRepositoryInterface) *OwnershipGuard {
	return &OwnershipGuard{
		companyRepo: companyRepo,
		taskRepo:    taskRepo,
	}
}

// AuthorizeCompany returns the company if userID owns it
func (g *OwnershipGuard) AuthorizeCompany(ctx context.Context, userID, companyID uint) (*models.Company, error) {
	company, err := g.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	if company.UserID != userID {
		logger.WithContext(ctx).WithField("company_id", companyID).Debug("Company access denied to non-owner")
		return nil, apperrors.ErrResourceNotFound
	}

	return company, nil
}

// AuthorizeTask returns the task and its company if userID owns the company
func (g *OwnershipGuard) AuthorizeTask(ctx context.Context, userID, taskID uint) (*models.EntryTask, *models.Company, error) {
	task, err := g.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrResourceNotFound
		}
		return nil, nil, fmt.Errorf("failed to load entry task: %w", err)
	}

	company, err := g.AuthorizeCompany(ctx, userID, task.CompanyID)
	if err != nil {
		return nil, nil, err
	}

	return task, company, nil
}
