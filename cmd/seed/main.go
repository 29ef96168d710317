package main

import (
	"context"
	"log"
	"time"

	"github.com/Mondoloni/Billed/internal/models"
	"github.com/Mondoloni/Billed/internal/repository"
	"github.com/Mondoloni/Billed/pkg/auth"
	"github.com/Mondoloni/Billed/pkg/config"
	"github.com/Mondoloni/Billed/pkg/logger"
	"github.com/Mondoloni/Billed/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Demo accounts matching the original application's test logins.
var seedUsers = []struct {
	email    string
	password string
	userType models.UserType
}{
	{"employee@test.tld", "employee", models.UserTypeEmployee},
	{"admin@test.tld", "admin", models.UserTypeAdmin},
}

var seedBills = []models.Bill{
	{
		Email:  "employee@test.tld",
		Type:   "Hôtel et logement",
		Name:   "encore",
		Date:   "2004-04-04",
		Amount: 400,
		VAT:    "80",
		Pct:    20,
		Status: models.BillStatusPending,
	},
	{
		Email:  "employee@test.tld",
		Type:   "Transports",
		Name:   "test1",
		Date:   "2001-01-01",
		Amount: 100,
		VAT:    "",
		Pct:    20,
		Status: models.BillStatusRefused,
	},
	{
		Email:  "employee@test.tld",
		Type:   "Services en ligne",
		Name:   "test3",
		Date:   "2003-03-03",
		Amount: 300,
		VAT:    "60",
		Pct:    20,
		Status: models.BillStatusAccepted,
	},
	{
		Email:  "employee@test.tld",
		Type:   "Restaurants et bars",
		Name:   "test2",
		Date:   "2002-02-02",
		Amount: 200,
		VAT:    "40",
		Pct:    20,
		Status: models.BillStatusRefused,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	billRepo := repository.NewBillRepository(db, appLogger)

	appLogger.Info("Seeding demo data")

	now := time.Now()
	for _, u := range seedUsers {
		if existing, _ := userRepo.GetByEmail(ctx, u.email); existing != nil {
			appLogger.Info("User already exists, skipping", zap.String("email", u.email))
			continue
		}

		hashed, err := auth.HashPassword(u.password)
		if err != nil {
			appLogger.Fatal("Failed to hash password", zap.Error(err))
		}

		user := &models.User{
			ID:        uuid.New(),
			Email:     u.email,
			Password:  hashed,
			Type:      u.userType,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			appLogger.Fatal("Failed to create user", zap.String("email", u.email), zap.Error(err))
		}
		appLogger.Info("Created user", zap.String("email", u.email), zap.String("type", string(u.userType)))
	}

	for _, b := range seedBills {
		bill := b
		bill.ID = uuid.New()
		bill.Commentary = "note de frais de démonstration"
		bill.CreatedAt = now
		bill.UpdatedAt = now
		if err := billRepo.Create(ctx, &bill); err != nil {
			appLogger.Fatal("Failed to create bill", zap.String("name", bill.Name), zap.Error(err))
		}
		appLogger.Info("Created bill", zap.String("name", bill.Name), zap.String("date", bill.Date))
	}

	appLogger.Info("Seeding completed")
}
