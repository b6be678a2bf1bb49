package usecase

import (
	"errors"
	"fmt"
	"time"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"
	"motorhub/pkg/logger"

	"gorm.io/gorm"
)

// tierFeatures is the single source of truth for what each
// subscription tier allows. Account features are always a copy of a
// row here, never edited field by field.
var tierFeatures = map[entity.SubscriptionTier]entity.SubscriptionFeatures{
	entity.TierBasic: {
		MaxListings:      10,
		AllowPhotography: true,
	},
	entity.TierStandard: {
		MaxListings:      20,
		AllowPhotography: true,
		AllowReviews:     true,
		AllowPodcasts:    true,
	},
	entity.TierPremium: {
		MaxListings:      40,
		AllowPhotography: true,
		AllowReviews:     true,
		AllowPodcasts:    true,
		AllowVideos:      true,
	},
}

const subscriptionTTL = 30 * 24 * time.Hour

// FeaturesForTier returns the feature set for a tier.
func FeaturesForTier(tier entity.SubscriptionTier) (entity.SubscriptionFeatures, bool) {
	features, ok := tierFeatures[tier]
	return features, ok
}

// NewDefaultSubscription builds the basic active subscription granted
// when an account is provisioned.
func NewDefaultSubscription() entity.Subscription {
	expiresAt := time.Now().Add(subscriptionTTL)
	return entity.Subscription{
		Tier:      entity.TierBasic,
		Status:    entity.SubscriptionActive,
		ExpiresAt: &expiresAt,
		Features:  tierFeatures[entity.TierBasic],
	}
}

// QuotaDecision is the answer to "may this account add a listing".
type QuotaDecision struct {
	Allowed        bool   `json:"allowed"`
	Reason         string `json:"reason,omitempty"`
	RemainingSlots int    `json:"remaining_slots"`
}

type EntitlementUseCase interface {
	GetAccount(accountID string) (*entity.Account, error)
	GetAccountByOwner(ownerID string) (*entity.Account, error)
	UpgradeTier(accountID, actorID string, tier entity.SubscriptionTier) (*entity.Account, error)
	CanAddListing(accountID string) (*QuotaDecision, error)
	IsSubscriptionExpired(account *entity.Account) bool
	CanHavePhotography(account *entity.Account) bool
	CanHaveReviews(account *entity.Account) bool
	CanHavePodcasts(account *entity.Account) bool
	CanHaveVideos(account *entity.Account) bool
}

type entitlementUseCase struct {
	accountRepo persistent.AccountRepository
	listingRepo persistent.ListingRepository
	payments    PaymentCollector
	logger      *logger.Logger
}

func NewEntitlementUseCase(
	accountRepo persistent.AccountRepository,
	listingRepo persistent.ListingRepository,
	payments PaymentCollector,
	logger *logger.Logger,
) EntitlementUseCase {
	return &entitlementUseCase{
		accountRepo: accountRepo,
		listingRepo: listingRepo,
		payments:    payments,
		logger:      logger,
	}
}

func (uc *entitlementUseCase) GetAccount(accountID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "account not found")
		}
		return nil, err
	}
	return account, nil
}

func (uc *entitlementUseCase) GetAccountByOwner(ownerID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "no account found for user")
		}
		return nil, err
	}
	return account, nil
}

// UpgradeTier replaces the subscription wholesale from the tier table.
// A downgrade therefore clears every flag the lower tier lacks.
func (uc *entitlementUseCase) UpgradeTier(accountID, actorID string, tier entity.SubscriptionTier) (*entity.Account, error) {
	features, ok := tierFeatures[tier]
	if !ok {
		return nil, apperr.Newf(apperr.KindInvalidTier, "invalid subscription tier: %s", tier)
	}

	account, err := uc.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if account.OwnerID != actorID {
		return nil, apperr.New(apperr.KindForbidden, "only the account owner can change the subscription")
	}

	if err := uc.payments.ChargeSubscription(account.ID, tier); err != nil {
		uc.logger.Error("Failed to charge subscription for account %s: %v", account.ID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to charge subscription")
	}

	expiresAt := time.Now().Add(subscriptionTTL)
	account.Subscription = entity.Subscription{
		Tier:      tier,
		Status:    entity.SubscriptionActive,
		ExpiresAt: &expiresAt,
		Features:  features,
	}

	if err := uc.accountRepo.Update(account); err != nil {
		uc.logger.Error("Failed to update account %s subscription: %v", account.ID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to update subscription")
	}

	uc.logger.Info("Account %s subscription changed to %s, expires %s", account.ID, tier, expiresAt.Format(time.RFC3339))
	return account, nil
}

// CanAddListing fails closed: any non-active account or subscription
// state denies, and quota counts both active and pending listings.
func (uc *entitlementUseCase) CanAddListing(accountID string) (*QuotaDecision, error) {
	account, err := uc.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if account.Status != entity.AccountStatusActive {
		return &QuotaDecision{Allowed: false, Reason: "Account is not active"}, nil
	}
	if account.Subscription.Status != entity.SubscriptionActive {
		return &QuotaDecision{Allowed: false, Reason: "Subscription is not active"}, nil
	}

	count, err := uc.listingRepo.CountByAccount(account.ID, []entity.ListingStatus{
		entity.ListingStatusActive,
		entity.ListingStatusPending,
	})
	if err != nil {
		uc.logger.Error("Failed to count listings for account %s: %v", account.ID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to count listings")
	}

	maxListings := account.Subscription.Features.MaxListings
	if count >= int64(maxListings) {
		return &QuotaDecision{
			Allowed: false,
			Reason:  fmt.Sprintf("Maximum listings limit (%d) reached for current subscription tier", maxListings),
		}, nil
	}

	return &QuotaDecision{
		Allowed:        true,
		RemainingSlots: maxListings - int(count),
	}, nil
}

// IsSubscriptionExpired is a pure read; flipping expired
// subscriptions to the expired status is an external scheduler's job.
func (uc *entitlementUseCase) IsSubscriptionExpired(account *entity.Account) bool {
	if account == nil || account.Subscription.ExpiresAt == nil {
		return false
	}
	return account.Subscription.ExpiresAt.Before(time.Now())
}

func (uc *entitlementUseCase) CanHavePhotography(account *entity.Account) bool {
	return account != nil && account.Subscription.Features.AllowPhotography
}

func (uc *entitlementUseCase) CanHaveReviews(account *entity.Account) bool {
	return account != nil && account.Subscription.Features.AllowReviews
}

func (uc *entitlementUseCase) CanHavePodcasts(account *entity.Account) bool {
	return account != nil && account.Subscription.Features.AllowPodcasts
}

func (uc *entitlementUseCase) CanHaveVideos(account *entity.Account) bool {
	return account != nil && account.Subscription.Features.AllowVideos
}
