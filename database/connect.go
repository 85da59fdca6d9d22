package database

import (
	"accommodation_manager/config"
	"accommodation_manager/model"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	log.Info("Connection Opened to Database")
	Migrate(DB)
	SeedData(DB)
}

// Migrate is split out so tests can run it against their own connection.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.User{},
		&model.Accommodation{},
		&model.Lease{},
		&model.Event{},
	)
	log.Info("Database Migrated")
}
