package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(ctx context.Context, userID uint, req *CreateCompanyRequest) (*CompanyResponse, error)
	List(ctx context.Context, userID uint) (*CompanyListResponse, error)
	GetWithTasks(ctx context.Context, userID, companyID uint) (*CompanyDetailResponse, error)
	Delete(ctx context.Context, userID, companyID uint) error
}

// TaskServiceInterface defines the interface for entry task service
type TaskServiceInterface interface {
	Create(ctx context.Context, userID, companyID uint, req *CreateTaskRequest) (*TaskResponse, error)
	List(ctx context.Context, userID, companyID uint) (*TaskListResponse, error)
	GetForEdit(ctx context.Context, userID, taskID uint) (*TaskDetailResponse, error)
	UpdateContent(ctx context.Context, userID, taskID uint, req *UpdateTaskContentRequest) (*TaskResponse, error)
	Delete(ctx context.Context, userID, taskID uint) error
}
