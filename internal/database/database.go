package database

import (
	"log"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/config"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	// TranslateError lets the stores detect unique-index violations via
	// gorm.ErrDuplicatedKey instead of parsing driver messages.
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(&models.Event{}, &models.Registration{})
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
