package usecase

import (
	"strings"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"
	"motorhub/pkg/logger"
	"motorhub/pkg/metrics"
)

// ListingUseCase is deliberately thin: create and list only, enough
// to make the subscription quota enforceable against real rows.
// Search, updates and media are separate systems.
type ListingUseCase interface {
	Create(ownerID, title string, price float64) (*entity.Listing, error)
	ListMine(ownerID string) ([]*entity.Listing, error)
}

type listingUseCase struct {
	listingRepo persistent.ListingRepository
	entitlement EntitlementUseCase
	logger      *logger.Logger
}

func NewListingUseCase(
	listingRepo persistent.ListingRepository,
	entitlement EntitlementUseCase,
	logger *logger.Logger,
) ListingUseCase {
	return &listingUseCase{
		listingRepo: listingRepo,
		entitlement: entitlement,
		logger:      logger,
	}
}

// Create checks the quota before persisting anything; the check is
// never applied retroactively to listings that already exist.
func (uc *listingUseCase) Create(ownerID, title string, price float64) (*entity.Listing, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.New(apperr.KindValidation, "title is required")
	}
	if price < 0 {
		return nil, apperr.New(apperr.KindValidation, "price cannot be negative")
	}

	account, err := uc.entitlement.GetAccountByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	decision, err := uc.entitlement.CanAddListing(account.ID)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		metrics.QuotaDenials.Inc()
		uc.logger.Info("Listing refused for account %s: %s", account.ID, decision.Reason)
		return nil, apperr.New(apperr.KindQuotaExceeded, decision.Reason)
	}

	listing := &entity.Listing{
		AccountID: account.ID,
		Title:     title,
		Price:     price,
		Status:    entity.ListingStatusActive,
	}
	if err := uc.listingRepo.Create(listing); err != nil {
		uc.logger.Error("Failed to create listing for account %s: %v", account.ID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to create listing")
	}

	uc.logger.Info("Listing %s created for account %s", listing.ID, account.ID)
	return listing, nil
}

func (uc *listingUseCase) ListMine(ownerID string) ([]*entity.Listing, error) {
	account, err := uc.entitlement.GetAccountByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return uc.listingRepo.ListByAccount(account.ID)
}
