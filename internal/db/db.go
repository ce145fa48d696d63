package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/padlasalon/salon-booking/internal/catalog"
	"github.com/padlasalon/salon-booking/internal/config"
	"github.com/padlasalon/salon-booking/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Stylist{},
		&models.User{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	if err := seedCatalog(db); err != nil {
		log.Fatal("failed to seed catalog", zap.Error(err))
	}

	return db
}

// seedCatalog loads the fixed service menu and stylist roster. Existing rows
// win, so manual adjustments (marking a stylist on leave) survive restarts.
func seedCatalog(db *gorm.DB) error {
	services := catalog.Services()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&services).Error; err != nil {
		return err
	}

	stylists := catalog.Stylists()
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&stylists).Error
}
