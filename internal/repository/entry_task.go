package repository

import (
	"context"

	"entry-tracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryTaskRepository handles database operations for entry tasks
type EntryTaskRepository struct {
	db *gorm.DB
}

// NewEntryTaskRepository creates a new entry task repository
func NewEntryTaskRepository(db *gorm.DB) *EntryTaskRepository {
	return &EntryTaskRepository{db: db}
}

// Create creates a new entry task
func (r *EntryTaskRepository) Create(ctx context.Context, task *models.EntryTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves an entry task by ID
func (r *EntryTaskRepository) GetByID(ctx context.Context, id uint) (*models.EntryTask, error) {
	var task models.EntryTask
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByCompany returns the company's tasks in creation order
func (r *EntryTaskRepository) ListByCompany(ctx context.Context, companyID uint) ([]models.EntryTask, error) {
	tasks := []models.EntryTask{}
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateContent replaces the task content and returns the updated row.
// gorm.ErrRecordNotFound is returned when the task no longer exists.
func (r *EntryTaskRepository) UpdateContent(ctx context.Context, id uint, content string) (*models.EntryTask, error) {
	var task models.EntryTask
	result := r.db.WithContext(ctx).
		Model(&task).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

// Delete deletes an entry task and reports whether a row was removed
func (r *EntryTaskRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.EntryTask{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
