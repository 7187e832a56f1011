package models

// EntryTask is a recruitment theme recorded under a company, with a free-text answer.
type EntryTask struct {
	BaseModel
	CompanyID uint    `json:"company_id" gorm:"not null;index"`
	Theme     string  `json:"theme" gorm:"not null;size:200" validate:"required,max=200"`
	Content   *string `json:"content" gorm:"type:text"`
}

// TableName returns the table name for EntryTask
func (EntryTask) TableName() string {
	return "entry_tasks"
}

// ContentText returns the content or an empty string when none was recorded
func (t *EntryTask) ContentText() string {
	if t.Content == nil {
		return ""
	}
	return *t.Content
}
