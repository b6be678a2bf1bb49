package usecase

import (
	"testing"
	"time"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func activeAccount(tier entity.SubscriptionTier) *entity.Account {
	expiresAt := time.Now().Add(24 * time.Hour)
	return &entity.Account{
		ID:           "account-123",
		OwnerID:      "user-123",
		Type:         entity.AccountTypeDealer,
		BusinessName: "Test Motors",
		Status:       entity.AccountStatusActive,
		Verification: entity.VerificationVerified,
		Subscription: entity.Subscription{
			Tier:      tier,
			Status:    entity.SubscriptionActive,
			ExpiresAt: &expiresAt,
			Features:  tierFeatures[tier],
		},
	}
}

func TestFeaturesForTier(t *testing.T) {
	basic, ok := FeaturesForTier(entity.TierBasic)
	assert.True(t, ok)
	assert.Equal(t, 10, basic.MaxListings)
	assert.True(t, basic.AllowPhotography)
	assert.False(t, basic.AllowReviews)
	assert.False(t, basic.AllowPodcasts)
	assert.False(t, basic.AllowVideos)

	standard, ok := FeaturesForTier(entity.TierStandard)
	assert.True(t, ok)
	assert.Equal(t, 20, standard.MaxListings)
	assert.True(t, standard.AllowReviews)
	assert.True(t, standard.AllowPodcasts)
	assert.False(t, standard.AllowVideos)

	premium, ok := FeaturesForTier(entity.TierPremium)
	assert.True(t, ok)
	assert.Equal(t, 40, premium.MaxListings)
	assert.True(t, premium.AllowVideos)

	_, ok = FeaturesForTier(entity.SubscriptionTier("platinum"))
	assert.False(t, ok)
}

func TestNewDefaultSubscription(t *testing.T) {
	sub := NewDefaultSubscription()

	assert.Equal(t, entity.TierBasic, sub.Tier)
	assert.Equal(t, entity.SubscriptionActive, sub.Status)
	assert.Equal(t, 10, sub.Features.MaxListings)
	assert.NotNil(t, sub.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), *sub.ExpiresAt, time.Minute)
}

func TestUpgradeTier_Success(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	account := activeAccount(entity.TierBasic)
	mockAccountRepo.On("GetByID", "account-123").Return(account, nil)
	mockPayments.On("ChargeSubscription", "account-123", entity.TierStandard).Return(nil)
	mockAccountRepo.On("Update", mock.AnythingOfType("*entity.Account")).Return(nil)

	updated, err := uc.UpgradeTier("account-123", "user-123", entity.TierStandard)

	assert.NoError(t, err)
	assert.Equal(t, entity.TierStandard, updated.Subscription.Tier)
	assert.Equal(t, entity.SubscriptionActive, updated.Subscription.Status)
	assert.Equal(t, 20, updated.Subscription.Features.MaxListings)
	assert.True(t, updated.Subscription.Features.AllowReviews)
	assert.NotNil(t, updated.Subscription.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), *updated.Subscription.ExpiresAt, time.Minute)

	mockAccountRepo.AssertExpectations(t)
	mockPayments.AssertExpectations(t)
}

func TestUpgradeTier_DowngradeClearsFeatures(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	account := activeAccount(entity.TierPremium)
	mockAccountRepo.On("GetByID", "account-123").Return(account, nil)
	mockPayments.On("ChargeSubscription", "account-123", entity.TierBasic).Return(nil)
	mockAccountRepo.On("Update", mock.AnythingOfType("*entity.Account")).Return(nil)

	updated, err := uc.UpgradeTier("account-123", "user-123", entity.TierBasic)

	assert.NoError(t, err)
	assert.Equal(t, entity.TierBasic, updated.Subscription.Tier)
	assert.Equal(t, 10, updated.Subscription.Features.MaxListings)
	assert.False(t, updated.Subscription.Features.AllowReviews)
	assert.False(t, updated.Subscription.Features.AllowPodcasts)
	assert.False(t, updated.Subscription.Features.AllowVideos)

	mockAccountRepo.AssertExpectations(t)
}

func TestUpgradeTier_InvalidTier(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	_, err := uc.UpgradeTier("account-123", "user-123", entity.SubscriptionTier("platinum"))

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidTier))
	assert.Contains(t, err.Error(), "invalid subscription tier")
	mockAccountRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpgradeTier_NotOwner(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	account := activeAccount(entity.TierBasic)
	mockAccountRepo.On("GetByID", "account-123").Return(account, nil)

	_, err := uc.UpgradeTier("account-123", "someone-else", entity.TierStandard)

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	mockPayments.AssertNotCalled(t, "ChargeSubscription", mock.Anything, mock.Anything)
	mockAccountRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpgradeTier_AccountNotFound(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	mockAccountRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.UpgradeTier("missing", "user-123", entity.TierStandard)

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCanAddListing_Allowed(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	account := activeAccount(entity.TierBasic)
	mockAccountRepo.On("GetByID", "account-123").Return(account, nil)
	mockListingRepo.On("CountByAccount", "account-123", []entity.ListingStatus{
		entity.ListingStatusActive,
		entity.ListingStatusPending,
	}).Return(int64(3), nil)

	decision, err := uc.CanAddListing("account-123")

	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 7, decision.RemainingSlots)
	assert.Empty(t, decision.Reason)

	mockListingRepo.AssertExpectations(t)
}

func TestCanAddListing_QuotaReached(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	account := activeAccount(entity.TierBasic)
	mockAccountRepo.On("GetByID", "account-123").Return(account, nil)
	mockListingRepo.On("CountByAccount", "account-123", mock.Anything).Return(int64(10), nil)

	decision, err := uc.CanAddListing("account-123")

	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "Maximum listings limit (10) reached for current subscription tier", decision.Reason)
	assert.Equal(t, 0, decision.RemainingSlots)
}

func TestCanAddListing_AccountNotActive(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	account := activeAccount(entity.TierBasic)
	account.Status = entity.AccountStatusSuspended
	mockAccountRepo.On("GetByID", "account-123").Return(account, nil)

	decision, err := uc.CanAddListing("account-123")

	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "Account is not active", decision.Reason)
	mockListingRepo.AssertNotCalled(t, "CountByAccount", mock.Anything, mock.Anything)
}

func TestCanAddListing_SubscriptionNotActive(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	account := activeAccount(entity.TierBasic)
	account.Subscription.Status = entity.SubscriptionExpired
	mockAccountRepo.On("GetByID", "account-123").Return(account, nil)

	decision, err := uc.CanAddListing("account-123")

	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "Subscription is not active", decision.Reason)
	mockListingRepo.AssertNotCalled(t, "CountByAccount", mock.Anything, mock.Anything)
}

func TestIsSubscriptionExpired(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	assert.False(t, uc.IsSubscriptionExpired(nil))

	account := activeAccount(entity.TierBasic)
	account.Subscription.ExpiresAt = nil
	assert.False(t, uc.IsSubscriptionExpired(account))

	future := time.Now().Add(time.Hour)
	account.Subscription.ExpiresAt = &future
	assert.False(t, uc.IsSubscriptionExpired(account))

	past := time.Now().Add(-time.Hour)
	account.Subscription.ExpiresAt = &past
	assert.True(t, uc.IsSubscriptionExpired(account))
}

func TestFeaturePredicates(t *testing.T) {
	mockAccountRepo := new(MockAccountRepository)
	mockListingRepo := new(MockListingRepository)
	mockPayments := new(MockPaymentCollector)
	uc := NewEntitlementUseCase(mockAccountRepo, mockListingRepo, mockPayments, logger.New())

	basic := activeAccount(entity.TierBasic)
	assert.True(t, uc.CanHavePhotography(basic))
	assert.False(t, uc.CanHaveReviews(basic))
	assert.False(t, uc.CanHavePodcasts(basic))
	assert.False(t, uc.CanHaveVideos(basic))

	premium := activeAccount(entity.TierPremium)
	assert.True(t, uc.CanHavePhotography(premium))
	assert.True(t, uc.CanHaveReviews(premium))
	assert.True(t, uc.CanHavePodcasts(premium))
	assert.True(t, uc.CanHaveVideos(premium))

	assert.False(t, uc.CanHavePhotography(nil))
	assert.False(t, uc.CanHaveVideos(nil))
}
