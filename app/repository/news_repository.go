package repository

import (
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create inserts a new news article
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news article by its ID
func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetAll retrieves every news article, newest first (admin listing)
func (r *newsRepository) GetAll() ([]models.News, error) {
	var news []models.News
	err := r.db.Order("published_date DESC").Find(&news).Error
	return news, err
}

// GetActive retrieves active news articles, newest first, optionally
// filtered by a substring match against title or content
func (r *newsRepository) GetActive(search string) ([]models.News, error) {
	q := r.db.Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	var news []models.News
	err := q.Order("published_date DESC").Find(&news).Error
	return news, err
}

// GetRecentActive retrieves the newest active articles for the home page
func (r *newsRepository) GetRecentActive(limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Where("is_active = ?", true).
		Order("published_date DESC").Limit(limit).Find(&news).Error
	return news, err
}

// Update conditionally rewrites an existing article
func (r *newsRepository) Update(news *models.News) error {
	return updateByID(r.db, &models.News{}, news.ID, news)
}

// Delete removes a news article by its ID
func (r *newsRepository) Delete(id uint) error {
	return deleteByID(r.db, &models.News{}, id)
}

// Count returns the total number of news articles
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Count(&count).Error
	return count, err
}
