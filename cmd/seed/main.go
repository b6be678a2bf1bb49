package main

import (
	"encoding/json"
	"fmt"
	"time"

	"motorhub/internal/entity"
	"motorhub/internal/model"
	"motorhub/internal/usecase"
	"motorhub/pkg/config"
	"motorhub/pkg/database"
	"motorhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	admin, err := seedUser(db, log, "admin@motorhub.local", "motorhub_admin", "admin123", string(entity.RoleAdmin))
	if err != nil {
		return err
	}
	log.Info("Admin user ready: %s", admin.Email)

	if _, err := seedUser(db, log, "nina@test.com", "nina_rides", "password123", string(entity.RolePrivate)); err != nil {
		return err
	}

	// One applicant with a pending dealer request for reviewers to act on
	marta, err := seedUser(db, log, "marta@test.com", "marta_wheels", "password123", string(entity.RolePrivate))
	if err != nil {
		return err
	}
	if err := seedPendingDealerRequest(db, log, marta.ID); err != nil {
		return err
	}

	// One already provisioned dealer with listings against the quota
	if err := seedProvisionedDealer(db, log); err != nil {
		return err
	}

	return nil
}

func seedUser(db *gorm.DB, log *logger.Logger, email, username, password, role string) (*model.UserModel, error) {
	var existing model.UserModel
	result := db.Where("email = ? OR username = ?", email, username).First(&existing)
	if result.Error == nil {
		log.Info("User %s already exists, skipping", username)
		return &existing, nil
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	user := &model.UserModel{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
		IsActive: true,
	}
	if err := user.BeforeCreate(nil); err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}

	log.Info("Created user: %s (%s, role=%s)", username, email, role)
	return user, nil
}

func seedPendingDealerRequest(db *gorm.DB, log *logger.Logger, userID string) error {
	var existing model.RoleRequestModel
	result := db.Where("user_id = ? AND request_type = ? AND status = ?", userID, "dealer", "pending").First(&existing)
	if result.Error == nil {
		log.Info("Pending dealer request already exists for user %s, skipping", userID)
		return nil
	}

	payload, _ := json.Marshal(entity.RequestPayload{
		BusinessName:  "Marta Wheels & Co",
		BusinessType:  "used_cars",
		LicenseNumber: "DL-2024-0042",
	})

	request := &model.RoleRequestModel{
		UserID:      userID,
		RequestType: string(entity.RequestTypeDealer),
		Status:      string(entity.RequestStatusPending),
		Payload:     payload,
		Priority:    string(entity.PriorityHigh),
	}
	if err := request.BeforeCreate(nil); err != nil {
		return fmt.Errorf("failed to generate request ID: %w", err)
	}

	event := &model.RequestEventModel{
		RequestID: request.ID,
		ToStatus:  string(entity.RequestStatusPending),
		ActorID:   userID,
		Note:      "request submitted",
	}
	if err := event.BeforeCreate(nil); err != nil {
		return fmt.Errorf("failed to generate event ID: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(request).Error; err != nil {
			return fmt.Errorf("failed to create role request: %w", err)
		}
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to create request event: %w", err)
		}
		log.Info("Created pending dealer request %s for user %s", request.ID, userID)
		return nil
	})
}

func seedProvisionedDealer(db *gorm.DB, log *logger.Logger) error {
	dealer, err := seedUser(db, log, "oleg@test.com", "oleg_motors", "password123", string(entity.RolePrivate))
	if err != nil {
		return err
	}

	var existing model.AccountModel
	result := db.Where("owner_id = ?", dealer.ID).First(&existing)
	if result.Error == nil {
		log.Info("Account already exists for user %s, skipping", dealer.Username)
		return nil
	}

	subscription := usecase.NewDefaultSubscription()
	features, _ := json.Marshal(subscription.Features)

	account := &model.AccountModel{
		OwnerID:               dealer.ID,
		Type:                  string(entity.AccountTypeDealer),
		BusinessName:          "Oleg Motors",
		BusinessType:          "new_cars",
		LicenseNumber:         "DL-2023-0159",
		Status:                string(entity.AccountStatusActive),
		Verification:          string(entity.VerificationVerified),
		SubscriptionTier:      string(subscription.Tier),
		SubscriptionStatus:    string(subscription.Status),
		SubscriptionExpiresAt: subscription.ExpiresAt,
		Features:              features,
	}
	if err := account.BeforeCreate(nil); err != nil {
		return fmt.Errorf("failed to generate account ID: %w", err)
	}
	if err := db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	if err := db.Model(&model.UserModel{}).Where("id = ?", dealer.ID).Updates(map[string]interface{}{
		"role":       string(entity.RoleDealer),
		"account_id": account.ID,
	}).Error; err != nil {
		return fmt.Errorf("failed to promote user %s: %w", dealer.Username, err)
	}

	log.Info("Created dealer account %s for user %s", account.ID, dealer.Username)

	titles := []string{
		"2019 Volkswagen Golf, one owner",
		"2021 Skoda Octavia estate",
		"2017 Toyota Corolla, low mileage",
	}
	for i, title := range titles {
		listing := &model.ListingModel{
			AccountID: account.ID,
			Title:     title,
			Price:     9500 + float64(i)*2400,
			Status:    string(entity.ListingStatusActive),
			CreatedAt: time.Now().Add(-time.Duration(i) * 24 * time.Hour),
		}
		if err := listing.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate listing ID: %w", err)
		}
		if err := db.Create(listing).Error; err != nil {
			log.Error("Failed to create listing %q: %v", title, err)
			continue
		}
	}

	log.Info("Created %d listings for dealer account %s", len(titles), account.ID)
	return nil
}
