package database

import (
	"fmt"
	"log"

	"github.com/mkrishnan/retailbill-api/internal/config"
	"github.com/mkrishnan/retailbill-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Employee{},
		&entity.Customer{},
		&entity.Product{},
		&entity.Company{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the initial admin employee and the company
// profile when the database is empty.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		var existing entity.Employee
		if err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error; err != nil {
			admin := entity.Employee{
				Name:   cfg.Admin.Name,
				Email:  cfg.Admin.Email,
				Active: true,
			}
			if admin.Name == "" {
				admin.Name = "Admin"
			}
			if err := admin.SetPassword(cfg.Admin.Password); err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else if err := db.Create(&admin).Error; err != nil {
				log.Printf("Warning: failed to create admin employee: %v", err)
			} else {
				log.Printf("Admin employee created: %s", cfg.Admin.Email)
			}
		} else {
			log.Printf("Admin employee already exists: %s", cfg.Admin.Email)
		}
	}

	var count int64
	db.Model(&entity.Company{}).Count(&count)
	if count == 0 {
		company := entity.Company{
			Name:        cfg.App.Name,
			CGSTEnabled: true,
			SGSTEnabled: true,
			CGSTRate:    decimal.NewFromInt(9),
			SGSTRate:    decimal.NewFromInt(9),
		}
		if err := db.Create(&company).Error; err != nil {
			log.Printf("Warning: failed to create company profile: %v", err)
		} else {
			log.Println("Default company profile created")
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
