package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// News represents a news article published on the village website.
// Only rows with IsActive set are visible to the public.
type News struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(200)" json:"title" validate:"required,max=200"`
	Content       string    `gorm:"type:varchar(5000)" json:"content" validate:"required,max=5000"`
	PublishedDate time.Time `gorm:"index;autoCreateTime" json:"published_date"`
	IsActive      bool      `gorm:"index;default:true" json:"is_active"`
	ImageURL      string    `gorm:"type:varchar(500)" json:"image_url" validate:"omitempty,url,max=500"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

func (n *News) Validate() error {
	return validator.New().Struct(n)
}
