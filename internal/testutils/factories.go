package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"entry-tracker-backend/internal/database/models"
)

var factorySeq atomic.Uint64

func nextSeq() uint64 {
	return factorySeq.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with unique username and email.
// PasswordHash is a placeholder; tests that log in hash a real password.
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		Username:     fmt.Sprintf("user%d", n),
		Email:        fmt.Sprintf("user%d@example.com", n),
		PasswordHash: "pbkdf2:sha256:1000$c2FsdA$00",
	}
}

// WithIdentity sets a custom username and email
func (f *UserFactory) WithIdentity(username, email string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = email
	return user
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company owned by ownerID
func (f *CompanyFactory) Create(ownerID uint) *models.Company {
	return &models.Company{
		UserID: ownerID,
		Name:   fmt.Sprintf("Company %d", nextSeq()),
	}
}

// WithName creates a test Company with a custom name
func (f *CompanyFactory) WithName(ownerID uint, name string) *models.Company {
	company := f.Create(ownerID)
	company.Name = name
	return company
}

// EntryTaskFactory provides methods to create test EntryTask data
type EntryTaskFactory struct{}

// NewEntryTaskFactory creates a new EntryTaskFactory
func NewEntryTaskFactory() *EntryTaskFactory {
	return &EntryTaskFactory{}
}

// Create creates a test EntryTask under companyID with no content
func (f *EntryTaskFactory) Create(companyID uint) *models.EntryTask {
	return &models.EntryTask{
		CompanyID: companyID,
		Theme:     fmt.Sprintf("Theme %d", nextSeq()),
	}
}

// WithContent creates a test EntryTask with content
func (f *EntryTaskFactory) WithContent(companyID uint, content string) *models.EntryTask {
	task := f.Create(companyID)
	task.Content = &content
	return task
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a live test Session for userID
func (f *SessionFactory) Create(userID uint) *models.Session {
	now := time.Now()
	return &models.Session{
		TokenHash:  fmt.Sprintf("%064d", nextSeq()),
		UserID:     userID,
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(time.Hour),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User      *UserFactory
	Company   *CompanyFactory
	EntryTask *EntryTaskFactory
	Session   *SessionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		Company:   NewCompanyFactory(),
		EntryTask: NewEntryTaskFactory(),
		Session:   NewSessionFactory(),
	}
}
