package usecase

import (
	"testing"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateListing_Success(t *testing.T) {
	mockListingRepo := new(MockListingRepository)
	mockEntitlement := new(MockEntitlementUseCase)
	uc := NewListingUseCase(mockListingRepo, mockEntitlement, logger.New())

	account := activeAccount(entity.TierBasic)
	mockEntitlement.On("GetAccountByOwner", "user-123").Return(account, nil)
	mockEntitlement.On("CanAddListing", "account-123").Return(&QuotaDecision{
		Allowed:        true,
		RemainingSlots: 7,
	}, nil)
	mockListingRepo.On("Create", mock.AnythingOfType("*entity.Listing")).Return(nil)

	listing, err := uc.Create("user-123", "2019 Volkswagen Golf", 9500)

	assert.NoError(t, err)
	assert.Equal(t, "account-123", listing.AccountID)
	assert.Equal(t, "2019 Volkswagen Golf", listing.Title)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)

	mockListingRepo.AssertExpectations(t)
	mockEntitlement.AssertExpectations(t)
}

func TestCreateListing_QuotaExceeded(t *testing.T) {
	mockListingRepo := new(MockListingRepository)
	mockEntitlement := new(MockEntitlementUseCase)
	uc := NewListingUseCase(mockListingRepo, mockEntitlement, logger.New())

	account := activeAccount(entity.TierBasic)
	mockEntitlement.On("GetAccountByOwner", "user-123").Return(account, nil)
	mockEntitlement.On("CanAddListing", "account-123").Return(&QuotaDecision{
		Allowed: false,
		Reason:  "Maximum listings limit (10) reached for current subscription tier",
	}, nil)

	_, err := uc.Create("user-123", "2019 Volkswagen Golf", 9500)

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindQuotaExceeded))
	assert.Contains(t, err.Error(), "Maximum listings limit (10) reached")
	mockListingRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateListing_EmptyTitle(t *testing.T) {
	mockListingRepo := new(MockListingRepository)
	mockEntitlement := new(MockEntitlementUseCase)
	uc := NewListingUseCase(mockListingRepo, mockEntitlement, logger.New())

	_, err := uc.Create("user-123", "   ", 9500)

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	mockEntitlement.AssertNotCalled(t, "GetAccountByOwner", mock.Anything)
}

func TestCreateListing_NegativePrice(t *testing.T) {
	mockListingRepo := new(MockListingRepository)
	mockEntitlement := new(MockEntitlementUseCase)
	uc := NewListingUseCase(mockListingRepo, mockEntitlement, logger.New())

	_, err := uc.Create("user-123", "2019 Volkswagen Golf", -1)

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateListing_NoAccount(t *testing.T) {
	mockListingRepo := new(MockListingRepository)
	mockEntitlement := new(MockEntitlementUseCase)
	uc := NewListingUseCase(mockListingRepo, mockEntitlement, logger.New())

	mockEntitlement.On("GetAccountByOwner", "user-123").Return(nil, apperr.New(apperr.KindNotFound, "account not found"))

	_, err := uc.Create("user-123", "2019 Volkswagen Golf", 9500)

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListMine(t *testing.T) {
	mockListingRepo := new(MockListingRepository)
	mockEntitlement := new(MockEntitlementUseCase)
	uc := NewListingUseCase(mockListingRepo, mockEntitlement, logger.New())

	account := activeAccount(entity.TierBasic)
	listings := []*entity.Listing{
		{ID: "listing-1", AccountID: "account-123", Title: "2019 Volkswagen Golf"},
		{ID: "listing-2", AccountID: "account-123", Title: "2016 Skoda Octavia"},
	}
	mockEntitlement.On("GetAccountByOwner", "user-123").Return(account, nil)
	mockListingRepo.On("ListByAccount", "account-123").Return(listings, nil)

	got, err := uc.ListMine("user-123")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	mockListingRepo.AssertExpectations(t)
}
