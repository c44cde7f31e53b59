package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// VillageInfo holds the village profile shown on the home, about and
// contact pages. The application treats the first row as canonical and
// never creates more than one through the admin area.
type VillageInfo struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	AboutText     string  `gorm:"type:varchar(2000)" json:"about_text" validate:"required,max=2000"`
	History       string  `gorm:"type:varchar(3000)" json:"history" validate:"required,max=3000"`
	Population    int     `json:"population" validate:"required,gte=1,lte=1000000"`
	Area          float64 `gorm:"type:decimal(18,2)" json:"area" validate:"required,gte=0.01,lte=10000"`
	MainCrops     string  `gorm:"type:varchar(500)" json:"main_crops" validate:"required,max=500"`
	ContactEmail  string  `gorm:"type:varchar(200)" json:"contact_email" validate:"required,email,max=200"`
	ContactNumber string  `gorm:"type:varchar(20)" json:"contact_number" validate:"required,max=20"`
	Address       string  `gorm:"type:varchar(500)" json:"address" validate:"required,max=500"`
	SarpanchName  string  `gorm:"type:varchar(100)" json:"sarpanch_name" validate:"required,max=100"`
	SecretaryName string  `gorm:"type:varchar(100)" json:"secretary_name" validate:"required,max=100"`
}

// TableName specifies the table name for the VillageInfo model
func (VillageInfo) TableName() string {
	return "village_info"
}

func (v *VillageInfo) Validate() error {
	return validator.New().Struct(v)
}

// MainCropsCount returns the number of comma-separated crops listed
func (v *VillageInfo) MainCropsCount() int {
	if strings.TrimSpace(v.MainCrops) == "" {
		return 0
	}
	return len(strings.Split(v.MainCrops, ","))
}
