package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "Admin"

	// Lockout policy: after MaxFailedLogins consecutive failures the
	// account is locked for LockoutDuration, password correctness aside.
	MaxFailedLogins = 5
	LockoutDuration = 30 * time.Minute
)

// Role is an authorization tag attached to an administrator account.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;type:varchar(50)" json:"name" validate:"required,max=50"`
}

// TableName specifies the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

// AdminUser is an administrator account. Accounts are provisioned by the
// startup seed and manage all site content through the admin area.
type AdminUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;type:varchar(100)" json:"username" validate:"required,min=3,max=100"`
	Email        string     `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,max=200"`
	FullName     string     `gorm:"type:varchar(100)" json:"full_name" validate:"max=100"`
	PasswordHash string     `gorm:"type:text" json:"-"`
	FailedLogins int        `gorm:"default:0" json:"-"`
	LockedUntil  *time.Time `json:"-"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Roles        []Role     `gorm:"many2many:admin_user_roles" json:"roles"`
}

// TableName specifies the table name for the AdminUser model
func (AdminUser) TableName() string {
	return "admin_users"
}

func (u *AdminUser) Validate() error {
	return validator.New().Struct(u)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the stored credential
func (u *AdminUser) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}

// SetPassword hashes and sets a new password for the account
func (u *AdminUser) SetPassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// IsLocked reports whether the account is currently locked out
func (u *AdminUser) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// RegisterFailedLogin increments the failure counter and starts the
// lockout window once the limit is reached.
func (u *AdminUser) RegisterFailedLogin(now time.Time) {
	u.FailedLogins++
	if u.FailedLogins >= MaxFailedLogins {
		until := now.Add(LockoutDuration)
		u.LockedUntil = &until
		u.FailedLogins = 0
	}
}

// RegisterSuccessfulLogin clears lockout state and records the login time
func (u *AdminUser) RegisterSuccessfulLogin(now time.Time) {
	u.FailedLogins = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
}

// HasRole reports whether the account is a member of the named role
func (u *AdminUser) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
