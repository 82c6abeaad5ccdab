package postgres

import (
	"log"

	"github.com/shoply-app/shoply-backend/internal/config"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ShoplyConfig) *gorm.DB {
	dsn := cfg.StoreDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ClientModel{},
		&models.StoreModel{},
		&models.AppModel{},
		&models.ProductModel{},
		&models.ProductSizeModel{},
		&models.InviteModel{},
		&models.TransactionModel{},
	)

	return db
}
