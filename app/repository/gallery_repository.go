package repository

import (
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

// GalleryCategoryAll is the sentinel that disables category filtering
const GalleryCategoryAll = "All"

// galleryRepository implements the GalleryRepository interface
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository instance
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

// Create inserts a single gallery image
func (r *galleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

// CreateBatch inserts all rows of an upload batch in one transaction.
// Either every row is committed or none is.
func (r *galleryRepository) CreateBatch(images []models.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&images).Error
	})
}

// GetByID retrieves a gallery image by its ID
func (r *galleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.First(&image, id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByCategory retrieves gallery images newest-upload-first, filtered by
// exact category unless the sentinel "All" (or empty) is given
func (r *galleryRepository) GetByCategory(category string) ([]models.GalleryImage, error) {
	q := r.db.Order("upload_date DESC")
	if category != "" && category != GalleryCategoryAll {
		q = q.Where("category = ?", category)
	}

	var images []models.GalleryImage
	err := q.Find(&images).Error
	return images, err
}

// Delete removes a gallery image row by its ID
func (r *galleryRepository) Delete(id uint) error {
	return deleteByID(r.db, &models.GalleryImage{}, id)
}

// Count returns the total number of gallery images
func (r *galleryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.GalleryImage{}).Count(&count).Error
	return count, err
}
