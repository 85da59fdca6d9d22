package database

import (
	"accommodation_manager/constants"
	"accommodation_manager/model"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "changeme"
	}

	users := []model.User{
		{Name: "Default Owner", Email: "owner@example.com", Password: hashPassword, Role: constants.ROLE_OWNER},
		{Name: "Default Tenant", Email: "tenant@example.com", Password: hashPassword, Role: constants.ROLE_TENANT},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Warn("failed to seed user ", user.Email, ": ", err)
		}
	}

	var owner model.User
	if err := db.Where("email = ?", "owner@example.com").First(&owner).Error; err != nil {
		return
	}

	accommodation := model.Accommodation{
		Name:      "Sample House",
		Type:      "House",
		Desc:      "Seeded sample listing",
		Address:   "123 Main St",
		Available: true,
		Slug:      "sample-house",
		UserID:    owner.ID,
	}
	if err := db.Where(model.Accommodation{Slug: accommodation.Slug}).FirstOrCreate(&accommodation).Error; err != nil {
		log.Warn("failed to seed accommodation: ", err)
		return
	}

	event := model.Event{
		AccommodationID: accommodation.ID,
		Name:            "Open viewing",
		Code:            uuid.NewString(),
		Date:            parseDate("2026-09-15"),
	}
	var count int64
	db.Model(&model.Event{}).Where("accommodation_id = ?", accommodation.ID).Count(&count)
	if count == 0 {
		if err := db.Create(&event).Error; err != nil {
			log.Warn("failed to seed event: ", err)
		}
	}
}
