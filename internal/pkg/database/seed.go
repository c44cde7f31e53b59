package database

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/internal/pkg/env"
)

// Seed provisions the data every fresh deployment needs: the Admin role,
// one bootstrap administrator, the village profile and sample content.
// Every step is guarded by an existence check so the routine is safe to
// run on every start. Failures are logged and never stop the server.
func Seed(db *gorm.DB) {
	if err := seedAdminRoleAndUser(db); err != nil {
		log.Printf("Seeding admin account failed: %v", err)
	}
	if err := seedVillageInfo(db); err != nil {
		log.Printf("Seeding village info failed: %v", err)
	}
	if err := seedNews(db); err != nil {
		log.Printf("Seeding news failed: %v", err)
	}
	if err := seedEvents(db); err != nil {
		log.Printf("Seeding events failed: %v", err)
	}
}

func seedAdminRoleAndUser(db *gorm.DB) error {
	var role models.Role
	err := db.Where("name = ?", models.RoleAdmin).First(&role).Error
	if err == gorm.ErrRecordNotFound {
		role = models.Role{Name: models.RoleAdmin}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
		log.Println("Created Admin role")
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Bootstrap credentials come from the environment. When no password
	// is configured a random one is generated and printed once so the
	// deployment never ships a hard-coded secret.
	password := env.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		b := make([]byte, 12)
		if _, err := rand.Read(b); err != nil {
			return err
		}
		password = hex.EncodeToString(b)
		log.Printf("ADMIN_PASSWORD not set, generated bootstrap password: %s", password)
	}

	admin := models.AdminUser{
		Username: env.GetEnv("ADMIN_USERNAME", "admin"),
		Email:    env.GetEnv("ADMIN_EMAIL", "admin@korlavalasa.com"),
		FullName: env.GetEnv("ADMIN_FULL_NAME", "Korlavalasa Administrator"),
		Roles:    []models.Role{role},
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Created bootstrap admin account %q", admin.Username)
	return nil
}

func seedVillageInfo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.VillageInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	info := models.VillageInfo{
		AboutText:     "Welcome to Korlavalasa, a beautiful village in Andhra Pradesh known for its rich cultural heritage and ancient temples. Our village represents the perfect blend of traditional values and modern development.",
		History:       "Korlavalasa has a glorious history spanning over two centuries. Established by our ancestors who were primarily involved in agriculture, the village has preserved ancient traditions while progressing with time.",
		Population:    3250,
		Area:          18.5,
		MainCrops:     "Paddy, Sugarcane, Cotton, Groundnut, Vegetables",
		ContactEmail:  "contact@korlavalasa.com",
		ContactNumber: "+91-9876543210",
		Address:       "Korlavalasa Village, Vizianagaram District, Andhra Pradesh - 535002, India",
		SarpanchName:  "Sri Venkata Ramana",
		SecretaryName: "Sri Srinivasa Rao",
	}
	return db.Create(&info).Error
}

func seedNews(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.News{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	items := []models.News{
		{
			Title:         "Welcome to Korlavalasa Official Website",
			Content:       "We are excited to launch the official website of Korlavalasa village. This digital platform will help us stay connected and share important updates with all villagers.",
			PublishedDate: now.AddDate(0, 0, -1),
			IsActive:      true,
		},
		{
			Title:         "Annual Village Festival",
			Content:       "The annual village festival will be celebrated next month. All villagers are invited to participate in the cultural programs and traditional rituals.",
			PublishedDate: now.AddDate(0, 0, -3),
			IsActive:      true,
		},
	}
	return db.Create(&items).Error
}

func seedEvents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	events := []models.Event{
		{
			Title:         "Monthly Gram Sabha Meeting",
			Description:   "Regular village council meeting to discuss development works and community issues.",
			EventDate:     now.AddDate(0, 0, 7),
			Location:      "Village Panchayat Office",
			ContactPerson: "Sarpanch Office",
			ContactNumber: "+91-9876543210",
		},
		{
			Title:         "Village Temple Festival",
			Description:   "Annual celebration at the village temple with cultural programs and traditional rituals.",
			EventDate:     now.AddDate(0, 0, 15),
			Location:      "Sri Lakshmi Narasimha Temple",
			ContactPerson: "Temple Committee",
			ContactNumber: "+91-9876543211",
		},
	}
	return db.Create(&events).Error
}
