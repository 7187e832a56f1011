package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"entry-tracker-backend/internal/auth"
	"entry-tracker-backend/internal/config"
	"entry-tracker-backend/internal/database"
	"entry-tracker-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TaskData struct {
	Theme   string `yaml:"theme"`
	Content string `yaml:"content,omitempty"`
}

type CompanyData struct {
	Name  string     `yaml:"name"`
	Tasks []TaskData `yaml:"tasks,omitempty"`
}

type UserData struct {
	Username  string        `yaml:"username"`
	Email     string        `yaml:"email"`
	Password  string        `yaml:"password"`
	Companies []CompanyData `yaml:"companies,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type seedCounts struct {
	users, companies, tasks int
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	hasher, err := auth.NewPasswordHasher(cfg.PasswordHashIterations)
	if err != nil {
		log.Fatalf("Failed to create password hasher: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, hasher, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" noise during seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, hasher *auth.PasswordHasher, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var counts seedCounts
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, userData := range users {
			if err := seedUser(tx, hasher, userData, &counts); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", userData.Username, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Users: %d created, %d total", counts.users, len(users))
	log.Printf("Companies: %d created", counts.companies)
	log.Printf("Entry tasks: %d created", counts.tasks)
	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func seedUser(tx *gorm.DB, hasher *auth.PasswordHasher, userData UserData, counts *seedCounts) error {
	if userData.Username == "" || userData.Email == "" || userData.Password == "" {
		return errors.New("username, email and password are required")
	}

	var user models.User
	err := tx.Where("username = ?", userData.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := hasher.Hash(userData.Password)
		if err != nil {
			return err
		}
		user = models.User{
			Username:     userData.Username,
			Email:        userData.Email,
			PasswordHash: hash,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		counts.users++
	} else if err != nil {
		return fmt.Errorf("failed to query user: %w", err)
	}

	for _, companyData := range userData.Companies {
		company, created, err := createCompany(tx, user.ID, companyData)
		if err != nil {
			return err
		}
		if created {
			counts.companies++
		}

		for _, taskData := range companyData.Tasks {
			created, err := createTask(tx, company.ID, taskData)
			if err != nil {
				return err
			}
			if created {
				counts.tasks++
			}
		}
	}

	return nil
}

func createCompany(tx *gorm.DB, userID uint, companyData CompanyData) (*models.Company, bool, error) {
	var company models.Company
	err := tx.Where("user_id = ? AND name = ?", userID, companyData.Name).First(&company).Error
	if err == nil {
		return &company, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query company: %w", err)
	}

	company = models.Company{UserID: userID, Name: companyData.Name}
	if err := tx.Create(&company).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
	}
	return &company, true, nil
}

func createTask(tx *gorm.DB, companyID uint, taskData TaskData) (bool, error) {
	var existing models.EntryTask
	err := tx.Where("company_id = ? AND theme = ?", companyID, taskData.Theme).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query entry task: %w", err)
	}

	task := models.EntryTask{CompanyID: companyID, Theme: taskData.Theme}
	if taskData.Content != "" {
		content := taskData.Content
		task.Content = &content
	}
	if err := tx.Create(&task).Error; err != nil {
		return false, fmt.Errorf("failed to create entry task %s: %w", taskData.Theme, err)
	}
	return true, nil
}
