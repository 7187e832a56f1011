package routes_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"

	"gorm.io/gorm"
)

// memoryDB is an in-process stand-in for the Postgres repositories
type memoryDB struct {
	mu        sync.Mutex
	seq       uint
	users     map[uint]models.User
	companies map[uint]models.Company
	tasks     map[uint]models.EntryTask
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:     map[uint]models.User{},
		companies: map[uint]models.Company{},
		tasks:     map[uint]models.EntryTask{},
	}
}

func (db *memoryDB) nextID() (uint, time.Time) {
	db.seq++
	return db.seq, time.Now().Add(time.Duration(db.seq) * time.Millisecond)
}

func (db *memoryDB) PingContext(context.Context) error { return nil }

type memoryUsers struct{ db *memoryDB }

func (r memoryUsers) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperrors.ErrUserExists
		}
	}
	user.ID, user.CreatedAt = r.db.nextID()
	r.db.users[user.ID] = *user
	return nil
}

func (r memoryUsers) find(match func(models.User) bool) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memoryUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r memoryUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

type memoryCompanies struct{ db *memoryDB }

func (r memoryCompanies) Create(_ context.Context, company *models.Company) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[company.UserID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	company.ID, company.CreatedAt = r.db.nextID()
	r.db.companies[company.ID] = *company
	return nil
}

func (r memoryCompanies) GetByID(_ context.Context, id uint) (*models.Company, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r memoryCompanies) ListByOwner(_ context.Context, ownerID uint) ([]models.Company, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.Company{}
	for _, c := range r.db.companies {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryCompanies) DeleteOwned(_ context.Context, id, ownerID uint) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.companies[id]
	if !ok || c.UserID != ownerID {
		return false, nil
	}
	for taskID, t := range r.db.tasks {
		if t.CompanyID == id {
			delete(r.db.tasks, taskID)
		}
	}
	delete(r.db.companies, id)
	return true, nil
}

type memoryTasks struct{ db *memoryDB }

func (r memoryTasks) Create(_ context.Context, task *models.EntryTask) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.companies[task.CompanyID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	task.ID, task.CreatedAt = r.db.nextID()
	task.UpdatedAt = task.CreatedAt
	r.db.tasks[task.ID] = *task
	return nil
}

func (r memoryTasks) GetByID(_ context.Context, id uint) (*models.EntryTask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r memoryTasks) ListByCompany(_ context.Context, companyID uint) ([]models.EntryTask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.EntryTask{}
	for _, t := range r.db.tasks {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryTasks) UpdateContent(_ context.Context, id uint, content string) (*models.EntryTask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	t.Content = &content
	t.UpdatedAt = time.Now()
	r.db.tasks[id] = t
	return &t, nil
}

func (r memoryTasks) Delete(_ context.Context, id uint) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.tasks[id]; !ok {
		return false, nil
	}
	delete(r.db.tasks, id)
	return true, nil
}

func (db *memoryDB) taskCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.tasks)
}
