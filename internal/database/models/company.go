package models

// Company groups entry tasks for one owner. UserID is fixed at creation.
type Company struct {
	BaseModel
	UserID uint   `json:"user_id" gorm:"not null;index"`
	Name   string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`

	// Relationships
	Tasks []EntryTask `json:"tasks,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
