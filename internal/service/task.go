package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/render"
	"entry-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TaskService handles business logic for entry tasks
type TaskService struct {
	repo      repository.EntryTaskRepositoryInterface
	guard     *OwnershipGuard
	validator *validator.Validate
}

// NewTaskService creates a new entry task service
func NewTaskService(repo repository.EntryTaskRepositoryInterface, guard *OwnershipGuard, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		guard:     guard,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to add a task to a company
type CreateTaskRequest struct {
	Theme string `json:"theme" form:"theme" validate:"required,max=200" example:"Why Acme?"`
}

// UpdateTaskContentRequest represents the request to replace a task's content.
// Empty content is allowed and clears the answer.
type UpdateTaskContentRequest struct {
	Content string `json:"content" form:"content" validate:"max=20000" example:"Because culture"`
}

// TaskResponse represents an entry task in API responses
type TaskResponse struct {
	ID          uint          `json:"id" example:"1"`
	CompanyID   uint          `json:"company_id" example:"1"`
	Theme       string        `json:"theme" example:"Why Acme?"`
	Content     string        `json:"content" example:"Because culture"`
	ContentHTML template.HTML `json:"content_html" swaggertype:"string" example:"Because culture"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TaskListResponse represents the tasks of one company
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// TaskDetailResponse represents a task opened for editing, with its company
type TaskDetailResponse struct {
	Task    TaskResponse    `json:"task"`
	Company CompanyResponse `json:"company"`
}

// Create adds a task with empty content to an owned company
func (s *TaskService) Create(ctx context.Context, userID, companyID uint, req *CreateTaskRequest) (*TaskResponse, error) {
	req.Theme = strings.TrimSpace(req.Theme)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	company, err := s.guard.AuthorizeCompany(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}

	task := &models.EntryTask{
		CompanyID: company.ID,
		Theme:     req.Theme,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create entry task: %w", err)
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

// List returns the tasks of an owned company
func (s *TaskService) List(ctx context.Context, userID, companyID uint) (*TaskListResponse, error) {
	company, err := s.guard.AuthorizeCompany(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry tasks: %w", err)
	}

	return &TaskListResponse{Tasks: toTaskResponses(tasks)}, nil
}

// GetForEdit returns an owned task and its company
func (s *TaskService) GetForEdit(ctx context.Context, userID, taskID uint) (*TaskDetailResponse, error) {
	task, company, err := s.guard.AuthorizeTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	return &TaskDetailResponse{
		Task:    toTaskResponse(task),
		Company: toCompanyResponse(company),
	}, nil
}

// UpdateContent replaces the content of an owned task. Theme and company never change.
func (s *TaskService) UpdateContent(ctx context.Context, userID, taskID uint, req *UpdateTaskContentRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	if _, _, err := s.guard.AuthorizeTask(ctx, userID, taskID); err != nil {
		return nil, err
	}

	task, err := s.repo.UpdateContent(ctx, taskID, req.Content)
	if err != nil {
		// deleted between the ownership check and the write
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update entry task: %w", err)
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

// Delete removes an owned task
func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) error {
	if _, _, err := s.guard.AuthorizeTask(ctx, userID, taskID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete entry task: %w", err)
	}
	if !deleted {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func toTaskResponse(task *models.EntryTask) TaskResponse {
	content := task.ContentText()
	return TaskResponse{
		ID:          task.ID,
		CompanyID:   task.CompanyID,
		Theme:       task.Theme,
		Content:     content,
		ContentHTML: render.NL2BR(content),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toTaskResponses(tasks []models.EntryTask) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i]))
	}
	return out
}
