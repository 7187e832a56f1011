package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"
	"entry-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	taskRepo  repository.EntryTaskRepositoryInterface
	guard     *OwnershipGuard
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, taskRepo repository.EntryTaskRepositoryInterface, guard *OwnershipGuard, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		taskRepo:  taskRepo,
		guard:     guard,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to add a company
type CreateCompanyRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=200" example:"Acme"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Acme"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyListResponse represents the caller's companies
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// CompanyDetailResponse represents a company page: the company and its tasks
type CompanyDetailResponse struct {
	Company CompanyResponse `json:"company"`
	Tasks   []TaskResponse  `json:"tasks"`
}

// Create adds a company owned by userID
func (s *CompanyService) Create(ctx context.Context, userID uint, req *CreateCompanyRequest) (*CompanyResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	company := &models.Company{
		UserID: userID,
		Name:   req.Name,
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	resp := toCompanyResponse(company)
	return &resp, nil
}

// List returns the companies owned by userID in creation order
func (s *CompanyService) List(ctx context.Context, userID uint) (*CompanyListResponse, error) {
	companies, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	resp := &CompanyListResponse{Companies: make([]CompanyResponse, 0, len(companies))}
	for i := range companies {
		resp.Companies = append(resp.Companies, toCompanyResponse(&companies[i]))
	}
	return resp, nil
}

// GetWithTasks returns an owned company together with its tasks
func (s *CompanyService) GetWithTasks(ctx context.Context, userID, companyID uint) (*CompanyDetailResponse, error) {
	company, err := s.guard.AuthorizeCompany(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry tasks: %w", err)
	}

	return &CompanyDetailResponse{
		Company: toCompanyResponse(company),
		Tasks:   toTaskResponses(tasks),
	}, nil
}

// Delete removes an owned company and all of its tasks atomically
func (s *CompanyService) Delete(ctx context.Context, userID, companyID uint) error {
	if _, err := s.guard.AuthorizeCompany(ctx, userID, companyID); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteOwned(ctx, companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	// lost a race with another delete; ownership was already confirmed
	if !deleted {
		return apperrors.ErrCompanyNotFound
	}

	logger.WithContext(ctx).WithField("company_id", companyID).Info("Company deleted")
	return nil
}

func toCompanyResponse(company *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		CreatedAt: company.CreatedAt,
	}
}
