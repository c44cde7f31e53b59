package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const GalleryDefaultCategory = "General"

// GalleryImage represents one photo in the village gallery. ImagePath is
// either a durable URL returned by the external image service or a local
// path under /uploads for disk-hosted files.
type GalleryImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(100)" json:"title" validate:"required,max=100"`
	ImagePath   string    `gorm:"type:varchar(500)" json:"image_path" validate:"required,max=500"`
	Category    string    `gorm:"type:varchar(50);index;default:'General'" json:"category" validate:"required,max=50"`
	Description string    `gorm:"type:varchar(500)" json:"description" validate:"max=500"`
	UploadDate  time.Time `gorm:"index;autoCreateTime" json:"upload_date"`
}

// TableName specifies the table name for the GalleryImage model
func (GalleryImage) TableName() string {
	return "gallery_images"
}

func (g *GalleryImage) Validate() error {
	return validator.New().Struct(g)
}

// IsLocallyHosted reports whether the backing file lives on this server's
// disk rather than on the external image service.
func (g *GalleryImage) IsLocallyHosted() bool {
	return strings.HasPrefix(g.ImagePath, "/uploads/")
}
