package repository

import (
	"context"
	"errors"

	"entry-tracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// GetByID retrieves a company by ID regardless of owner
func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ListByOwner returns the owner's companies in creation order
func (r *CompanyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Company, error) {
	companies := []models.Company{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").Order("id ASC").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// DeleteOwned deletes the company and all of its entry tasks in one transaction.
// It returns false, and changes nothing, when no company with this id belongs to ownerID.
func (r *CompanyRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.Company
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, ownerID).
			First(&company).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Where("company_id = ?", company.ID).Delete(&models.EntryTask{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Company{}, "id = ?", company.ID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
