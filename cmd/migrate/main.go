package main

import (
	"flag"
	"os"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	var (
		seed     bool
		logLevel string
	)
	flag.BoolVar(&seed, "seed", false, "Insert sample data after migrating")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Schema migrated")

	if seed {
		if err := seedSampleData(db.DB); err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		log.Info("Sample data inserted")
	}
}

// seedSampleData inserts a demo admin, a shopper with an address, and a
// small catalog. It is a no-op when users already exist.
func seedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&identity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin, err := identity.NewUser("Store Admin", "admin@example.com", "change-me-please")
		if err != nil {
			return err
		}
		admin.Role = identity.RoleAdmin
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		shopper, err := identity.NewUser("Sample Shopper", "shopper@example.com", "change-me-please")
		if err != nil {
			return err
		}
		if err := tx.Create(shopper).Error; err != nil {
			return err
		}

		address := &identity.Address{
			BaseEntity: shared.NewBaseEntity(),
			UserID:     shopper.ID,
			FullName:   "Sample Shopper",
			Line1:      "1 Main Street",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		}
		if err := tx.Create(address).Error; err != nil {
			return err
		}

		category, err := catalog.NewCategory("Electronics")
		if err != nil {
			return err
		}
		if err := tx.Create(category).Error; err != nil {
			return err
		}

		product, err := catalog.NewProduct("Smartphone", "smartphone",
			"A reasonably priced flagship phone", decimal.RequireFromString("699.99"),
			25, category.ID, []string{"https://cdn.example.com/smartphone.jpg"})
		if err != nil {
			return err
		}
		return tx.Create(product).Error
	})
}
