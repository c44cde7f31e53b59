package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

// Update and Delete on every repository distinguish a vanished row from
// other failures: they return gorm.ErrRecordNotFound when the target id no
// longer resolves, so handlers can answer 404 instead of resurrecting data.

// NewsRepository defines the data access contract for news articles
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	GetAll() ([]models.News, error)
	GetActive(search string) ([]models.News, error)
	GetRecentActive(limit int) ([]models.News, error)
	Update(news *models.News) error
	Delete(id uint) error
	Count() (int64, error)
}

// EventRepository defines the data access contract for events
type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetAll() ([]models.Event, error)
	GetUpcoming(from time.Time, limit int) ([]models.Event, error)
	GetPast(before time.Time, limit int) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
	Count() (int64, error)
}

// GalleryRepository defines the data access contract for gallery images
type GalleryRepository interface {
	Create(image *models.GalleryImage) error
	// CreateBatch inserts all rows in one transaction, all-or-nothing
	CreateBatch(images []models.GalleryImage) error
	GetByID(id uint) (*models.GalleryImage, error)
	// GetByCategory returns all rows newest-upload-first; the sentinel
	// category "All" (or empty) disables filtering
	GetByCategory(category string) ([]models.GalleryImage, error)
	Delete(id uint) error
	Count() (int64, error)
}

// VillageInfoRepository manages the singleton village profile row
type VillageInfoRepository interface {
	// GetFirst returns the canonical (first) row or gorm.ErrRecordNotFound
	GetFirst() (*models.VillageInfo, error)
	// GetOrCreate returns the canonical row, lazily inserting an empty one
	GetOrCreate() (*models.VillageInfo, error)
	Update(info *models.VillageInfo) error
}

// AuthResult is the outcome of a credential check
type AuthResult struct {
	Success bool
	Locked  bool
	User    *models.AdminUser
}

// AdminUserRepository defines the data access contract for administrator
// accounts, including the credential check with lockout accounting
type AdminUserRepository interface {
	Create(user *models.AdminUser) error
	GetByUsername(username string) (*models.AdminUser, error)
	GetByEmail(email string) (*models.AdminUser, error)
	Count() (int64, error)
	// Authenticate verifies the credentials and maintains the failed-login
	// counter: 5 consecutive failures lock the account for 30 minutes and
	// further attempts are rejected regardless of password correctness.
	Authenticate(username, password string) (AuthResult, error)
}

// Repositories holds all repository instances
type Repositories struct {
	News        NewsRepository
	Event       EventRepository
	Gallery     GalleryRepository
	VillageInfo VillageInfoRepository
	AdminUser   AdminUserRepository
}

// NewRepositories creates all repository instances with the given database connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		News:        NewNewsRepository(db),
		Event:       NewEventRepository(db),
		Gallery:     NewGalleryRepository(db),
		VillageInfo: NewVillageInfoRepository(db),
		AdminUser:   NewAdminUserRepository(db),
	}
}

// updateByID performs a conditional full-row update and maps a vanished
// target to gorm.ErrRecordNotFound. A zero affected-row count alone is not
// proof of absence (saving identical values affects nothing on MySQL), so
// existence is re-checked before reporting the conflict.
func updateByID(db *gorm.DB, model interface{}, id uint, values interface{}) error {
	res := db.Model(model).Where("id = ?", id).Select("*").Omit("id").Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// deleteByID removes one row and maps a missing target to gorm.ErrRecordNotFound
func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
