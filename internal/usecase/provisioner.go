package usecase

import (
	"errors"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"
	"motorhub/pkg/logger"

	"gorm.io/gorm"
)

// ProvisionFunc turns one approved request into its privileged
// account state. Handlers create before they mutate shared state, so
// re-running one after a partial failure is safe.
type ProvisionFunc func(request *entity.RoleRequest, user *entity.User) (string, error)

// Provisioner executes the account changes an approval implies. It
// returns the id of the created entity, empty when the request type
// provisions no entity of its own.
type Provisioner interface {
	Provision(request *entity.RoleRequest) (string, error)
}

type provisioner struct {
	userRepo    persistent.UserRepository
	accountRepo persistent.AccountRepository
	logger      *logger.Logger
	handlers    map[entity.RequestType]ProvisionFunc
}

func NewProvisioner(
	userRepo persistent.UserRepository,
	accountRepo persistent.AccountRepository,
	logger *logger.Logger,
) Provisioner {
	p := &provisioner{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
	p.handlers = map[entity.RequestType]ProvisionFunc{
		entity.RequestTypeDealer:      p.provisionDealer,
		entity.RequestTypeProvider:    p.provisionProvider,
		entity.RequestTypeMinistry:    p.provisionMinistry,
		entity.RequestTypeCoordinator: p.provisionCoordinator,
	}
	return p
}

func (p *provisioner) Provision(request *entity.RoleRequest) (string, error) {
	handler, ok := p.handlers[request.RequestType]
	if !ok {
		return "", apperr.Newf(apperr.KindProvisioning, "no provisioning handler for request type %s", request.RequestType)
	}

	user, err := p.userRepo.GetByID(request.UserID)
	if err != nil {
		return "", apperr.Wrap(err, apperr.KindProvisioning, "applicant user not found")
	}

	entityID, err := handler(request, user)
	if err != nil {
		p.logger.Error("Provisioning failed for request %s (type=%s, user=%s): %v",
			request.ID, request.RequestType, request.UserID, err)
		return "", err
	}

	p.logger.Info("Provisioned request %s: type=%s, user=%s, entity=%s",
		request.ID, request.RequestType, request.UserID, entityID)
	return entityID, nil
}

func (p *provisioner) provisionDealer(request *entity.RoleRequest, user *entity.User) (string, error) {
	account, err := p.findOrCreateAccount(user, &entity.Account{
		OwnerID:       user.ID,
		Type:          entity.AccountTypeDealer,
		BusinessName:  request.Payload.BusinessName,
		BusinessType:  request.Payload.BusinessType,
		LicenseNumber: request.Payload.LicenseNumber,
		Status:        entity.AccountStatusActive,
		Verification:  entity.VerificationVerified,
		Subscription:  NewDefaultSubscription(),
	})
	if err != nil {
		return "", err
	}

	user.Role = entity.RoleDealer
	user.AccountID = account.ID
	if err := p.userRepo.Update(user); err != nil {
		return "", apperr.Wrap(err, apperr.KindProvisioning, "failed to assign dealer role")
	}

	return account.ID, nil
}

func (p *provisioner) provisionProvider(request *entity.RoleRequest, user *entity.User) (string, error) {
	account, err := p.findOrCreateAccount(user, &entity.Account{
		OwnerID:      user.ID,
		Type:         entity.AccountTypeProvider,
		BusinessName: request.Payload.BusinessName,
		ServiceType:  request.Payload.ServiceType,
		Status:       entity.AccountStatusActive,
		Verification: entity.VerificationVerified,
		Subscription: NewDefaultSubscription(),
	})
	if err != nil {
		return "", err
	}

	user.Role = entity.RoleProvider
	user.AccountID = account.ID
	if err := p.userRepo.Update(user); err != nil {
		return "", apperr.Wrap(err, apperr.KindProvisioning, "failed to assign provider role")
	}

	return account.ID, nil
}

func (p *provisioner) provisionMinistry(request *entity.RoleRequest, user *entity.User) (string, error) {
	user.Role = entity.RoleMinistry
	user.MinistryProfile = &entity.MinistryProfile{
		MinistryName: request.Payload.MinistryName,
		Department:   request.Payload.Department,
		Position:     request.Payload.Position,
		EmployeeID:   request.Payload.EmployeeID,
	}

	if err := p.userRepo.Update(user); err != nil {
		return "", apperr.Wrap(err, apperr.KindProvisioning, "failed to assign ministry role")
	}
	return "", nil
}

func (p *provisioner) provisionCoordinator(request *entity.RoleRequest, user *entity.User) (string, error) {
	if user.CoordinatorProfile == nil {
		user.CoordinatorProfile = &entity.CoordinatorProfile{}
	}
	user.CoordinatorProfile.IsCoordinator = true

	station := request.Payload.StationName
	if station != "" && !containsString(user.CoordinatorProfile.Stations, station) {
		user.CoordinatorProfile.Stations = append(user.CoordinatorProfile.Stations, station)
	}

	if user.Role == entity.RolePrivate {
		user.Role = entity.RoleCoordinator
	}

	if err := p.userRepo.Update(user); err != nil {
		return "", apperr.Wrap(err, apperr.KindProvisioning, "failed to assign coordinator role")
	}
	return "", nil
}

// findOrCreateAccount reuses an account left behind by an earlier
// partial provisioning run instead of violating the one-account-per-
// owner constraint.
func (p *provisioner) findOrCreateAccount(user *entity.User, account *entity.Account) (*entity.Account, error) {
	existing, err := p.accountRepo.GetByOwnerID(user.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(err, apperr.KindProvisioning, "failed to look up existing account")
	}

	if err := p.accountRepo.Create(account); err != nil {
		return nil, apperr.Wrap(err, apperr.KindProvisioning, "failed to create account")
	}
	return account, nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
