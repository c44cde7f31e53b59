package repository

import (
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

// villageInfoRepository implements the VillageInfoRepository interface
type villageInfoRepository struct {
	db *gorm.DB
}

// NewVillageInfoRepository creates a new village info repository instance
func NewVillageInfoRepository(db *gorm.DB) VillageInfoRepository {
	return &villageInfoRepository{db: db}
}

// GetFirst returns the canonical profile row or gorm.ErrRecordNotFound
func (r *villageInfoRepository) GetFirst() (*models.VillageInfo, error) {
	var info models.VillageInfo
	err := r.db.Order("id ASC").First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetOrCreate returns the canonical profile row, lazily inserting an
// empty one on first admin access
func (r *villageInfoRepository) GetOrCreate() (*models.VillageInfo, error) {
	info, err := r.GetFirst()
	if err == nil {
		return info, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	fresh := &models.VillageInfo{}
	if err := r.db.Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

// Update conditionally rewrites the profile row
func (r *villageInfoRepository) Update(info *models.VillageInfo) error {
	return updateByID(r.db, &models.VillageInfo{}, info.ID, info)
}
