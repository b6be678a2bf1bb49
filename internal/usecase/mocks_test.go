package usecase

import (
	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockRoleRequestRepository struct {
	mock.Mock
}

func (m *MockRoleRequestRepository) CreateWithEvent(request *entity.RoleRequest, event *entity.RequestEvent) error {
	args := m.Called(request, event)
	return args.Error(0)
}

func (m *MockRoleRequestRepository) GetByID(id string) (*entity.RoleRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RoleRequest), args.Error(1)
}

func (m *MockRoleRequestRepository) GetPendingByUserAndType(userID string, requestType entity.RequestType) (*entity.RoleRequest, error) {
	args := m.Called(userID, requestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RoleRequest), args.Error(1)
}

func (m *MockRoleRequestRepository) List(filter persistent.RoleRequestFilter) ([]*entity.RoleRequest, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.RoleRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoleRequestRepository) Update(request *entity.RoleRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockRoleRequestRepository) UpdateWithEvent(request *entity.RoleRequest, event *entity.RequestEvent) error {
	args := m.Called(request, event)
	return args.Error(0)
}

func (m *MockRoleRequestRepository) ListEvents(requestID string) ([]*entity.RequestEvent, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RequestEvent), args.Error(1)
}

var _ persistent.RoleRequestRepository = (*MockRoleRequestRepository)(nil)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *entity.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(id string) (*entity.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByOwnerID(ownerID string) (*entity.Account, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(account *entity.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

var _ persistent.AccountRepository = (*MockAccountRepository)(nil)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(listing *entity.Listing) error {
	args := m.Called(listing)
	return args.Error(0)
}

func (m *MockListingRepository) CountByAccount(accountID string, statuses []entity.ListingStatus) (int64, error) {
	args := m.Called(accountID, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingRepository) ListByAccount(accountID string) ([]*entity.Listing, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Listing), args.Error(1)
}

var _ persistent.ListingRepository = (*MockListingRepository)(nil)

type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) Provision(request *entity.RoleRequest) (string, error) {
	args := m.Called(request)
	return args.String(0), args.Error(1)
}

var _ Provisioner = (*MockProvisioner)(nil)

type MockPaymentCollector struct {
	mock.Mock
}

func (m *MockPaymentCollector) ChargeSubscription(accountID string, tier entity.SubscriptionTier) error {
	args := m.Called(accountID, tier)
	return args.Error(0)
}

var _ PaymentCollector = (*MockPaymentCollector)(nil)

type MockEntitlementUseCase struct {
	mock.Mock
}

func (m *MockEntitlementUseCase) GetAccount(accountID string) (*entity.Account, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockEntitlementUseCase) GetAccountByOwner(ownerID string) (*entity.Account, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockEntitlementUseCase) UpgradeTier(accountID, actorID string, tier entity.SubscriptionTier) (*entity.Account, error) {
	args := m.Called(accountID, actorID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockEntitlementUseCase) CanAddListing(accountID string) (*QuotaDecision, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*QuotaDecision), args.Error(1)
}

func (m *MockEntitlementUseCase) IsSubscriptionExpired(account *entity.Account) bool {
	args := m.Called(account)
	return args.Bool(0)
}

func (m *MockEntitlementUseCase) CanHavePhotography(account *entity.Account) bool {
	args := m.Called(account)
	return args.Bool(0)
}

func (m *MockEntitlementUseCase) CanHaveReviews(account *entity.Account) bool {
	args := m.Called(account)
	return args.Bool(0)
}

func (m *MockEntitlementUseCase) CanHavePodcasts(account *entity.Account) bool {
	args := m.Called(account)
	return args.Bool(0)
}

func (m *MockEntitlementUseCase) CanHaveVideos(account *entity.Account) bool {
	args := m.Called(account)
	return args.Bool(0)
}

var _ EntitlementUseCase = (*MockEntitlementUseCase)(nil)
