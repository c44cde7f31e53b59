package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// GetDB returns the shared gorm handle
func GetDB() *gorm.DB {
	return DB
}

// SetupDatabase opens the database connection and provisions the schema.
// Development runs against MySQL, production against PostgreSQL; the
// driver follows APP_ENV the same way the deployment environments do.
// Schema provisioning is additive (AutoMigrate). DB_RECREATE=true drops
// every table first; that is an explicit opt-in, never the default.
func SetupDatabase() {
	var err error

	for i := 0; i < maxRetries; i++ {
		DB, err = open()
		if err == nil {
			if env.GetEnv("DB_RECREATE", "false") == "true" {
				log.Println("DB_RECREATE is set, dropping all tables before migrating")
				dropAll(DB)
			}

			if err := Migrate(DB); err != nil {
				panic(err)
			}
			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

func open() (*gorm.DB, error) {
	if env.IsDev() {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_PORT", "3306"),
			env.GetEnv("DB_NAME", ""),
		)
		return gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,  // not supported before MySQL 5.6
			DontSupportRenameIndex:    true,  // drop & create on rename, MariaDB compatible
			DontSupportRenameColumn:   true,  // `change` when renaming columns
			SkipInitializeWithVersion: false, // auto configure based on server version
		}), &gorm.Config{})
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_NAME", ""),
		env.GetEnv("DB_PORT", "5432"),
		env.GetEnv("DB_SSLMODE", "require"),
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate applies the additive schema for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.AdminUser{},
		&models.VillageInfo{},
		&models.News{},
		&models.Event{},
		&models.GalleryImage{},
	)
}

func dropAll(db *gorm.DB) {
	tables := []interface{}{
		"admin_user_roles",
		&models.GalleryImage{},
		&models.Event{},
		&models.News{},
		&models.VillageInfo{},
		&models.AdminUser{},
		&models.Role{},
	}
	if err := db.Migrator().DropTable(tables...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
	}
}
