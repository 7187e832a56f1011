package models

// User is an identity record. It is created once at signup and never mutated.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex:idx_users_username;not null;size:150" validate:"required,max=150"`
	Email        string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:150" validate:"required,email,max=150"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`

	// Relationships
	Companies []Company `json:"companies,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Sessions  []Session `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
