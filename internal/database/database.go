package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orders-etl-service/internal/config"
	"orders-etl-service/internal/models"
)

var DB *gorm.DB

// ConnectDatabase opens the configured database (sqlite by default, postgres
// when DB_DRIVER=postgres) and migrates the dimension, fact, and analytical
// tables.
func ConnectDatabase() {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	// TranslateError maps driver-specific failures onto gorm's portable
	// sentinels (gorm.ErrDuplicatedKey and friends) for both backends.
	gormConfig := &gorm.Config{Logger: newLogger, TranslateError: true}

	var err error
	switch driver := config.DBDriver(); driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		DB, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case "sqlite":
		DB, err = gorm.Open(sqlite.Open(config.SQLitePath()), gormConfig)
	default:
		log.Fatalf("Unknown DB_DRIVER %q (want sqlite or postgres)", driver)
	}

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to auto-migrate database schema: %v", err)
	}
	log.Println("Database schema migration completed.")
}

// Migrate creates or updates the tables for every persisted record kind.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Seller{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderPayment{},
		&models.Product{},
		&models.ProductCategory{},
		&models.FactRecord{},
		&models.TopSeller{},
		&models.TopProductCategory{},
		&models.OrderStatusCount{},
		&models.AvgDeliveryDuration{},
		&models.LoyalCustomer{},
	)
}

// GetDB returns the gorm database instance
func GetDB() *gorm.DB {
	return DB
}
