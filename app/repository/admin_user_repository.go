package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

// adminUserRepository implements the AdminUserRepository interface
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository instance
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

// Create inserts a new administrator account
func (r *adminUserRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

// GetByUsername retrieves an account by username, roles preloaded
func (r *adminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Preload("Roles").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves an account by email, roles preloaded
func (r *adminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Preload("Roles").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the total number of administrator accounts
func (r *adminUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}

// Authenticate checks the credentials and maintains lockout state.
// A locked account fails immediately, password correctness aside. An
// unknown username costs a bcrypt comparison anyway so the two failure
// modes take comparable time.
func (r *adminUserRepository) Authenticate(username, password string) (AuthResult, error) {
	now := time.Now()

	user, err := r.GetByUsername(username)
	if err == gorm.ErrRecordNotFound {
		models.CheckPasswordHash(password, "")
		return AuthResult{}, nil
	}
	if err != nil {
		return AuthResult{}, err
	}

	if user.IsLocked(now) {
		return AuthResult{Locked: true, User: user}, nil
	}

	if !user.CheckPassword(password) {
		user.RegisterFailedLogin(now)
		if err := r.saveLoginState(user); err != nil {
			return AuthResult{}, err
		}
		return AuthResult{Locked: user.IsLocked(now), User: user}, nil
	}

	user.RegisterSuccessfulLogin(now)
	if err := r.saveLoginState(user); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Success: true, User: user}, nil
}

func (r *adminUserRepository) saveLoginState(user *models.AdminUser) error {
	return r.db.Model(&models.AdminUser{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"failed_logins": user.FailedLogins,
			"locked_until":  user.LockedUntil,
			"last_login_at": user.LastLoginAt,
		}).Error
}
