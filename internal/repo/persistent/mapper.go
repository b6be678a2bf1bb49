package persistent

import (
	"encoding/json"

	"motorhub/internal/entity"
	"motorhub/internal/model"

	"gorm.io/datatypes"
)

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func fromJSON(data datatypes.JSON, v interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, v)
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Phone:     m.Phone,
		Username:  m.Username,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		IsActive:  m.IsActive,
		AccountID: m.AccountID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.MinistryProfile) > 0 {
		var profile entity.MinistryProfile
		fromJSON(m.MinistryProfile, &profile)
		user.MinistryProfile = &profile
	}
	if len(m.CoordinatorProfile) > 0 {
		var profile entity.CoordinatorProfile
		fromJSON(m.CoordinatorProfile, &profile)
		user.CoordinatorProfile = &profile
	}

	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	userModel := &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Phone:     e.Phone,
		Username:  e.Username,
		Password:  e.Password,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		AccountID: e.AccountID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if e.MinistryProfile != nil {
		userModel.MinistryProfile = toJSON(e.MinistryProfile)
	}
	if e.CoordinatorProfile != nil {
		userModel.CoordinatorProfile = toJSON(e.CoordinatorProfile)
	}

	return userModel
}

func ToRoleRequestEntity(m *model.RoleRequestModel) *entity.RoleRequest {
	if m == nil {
		return nil
	}

	request := &entity.RoleRequest{
		ID:                   m.ID,
		UserID:               m.UserID,
		RequestType:          entity.RequestType(m.RequestType),
		Status:               entity.RequestStatus(m.Status),
		Priority:             entity.RequestPriority(m.Priority),
		AutoApprovalEligible: m.AutoApprovalEligible,
		ReviewerID:           m.ReviewerID,
		ReviewNotes:          m.ReviewNotes,
		ReviewedAt:           m.ReviewedAt,
		AssociatedEntityID:   m.AssociatedEntityID,
		ProvisioningError:    m.ProvisioningError,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}

	fromJSON(m.Payload, &request.Payload)
	fromJSON(m.Documents, &request.Documents)

	return request
}

func ToRoleRequestModel(e *entity.RoleRequest) *model.RoleRequestModel {
	if e == nil {
		return nil
	}

	return &model.RoleRequestModel{
		ID:                   e.ID,
		UserID:               e.UserID,
		RequestType:          string(e.RequestType),
		Status:               string(e.Status),
		Payload:              toJSON(e.Payload),
		Priority:             string(e.Priority),
		AutoApprovalEligible: e.AutoApprovalEligible,
		ReviewerID:           e.ReviewerID,
		ReviewNotes:          e.ReviewNotes,
		ReviewedAt:           e.ReviewedAt,
		AssociatedEntityID:   e.AssociatedEntityID,
		ProvisioningError:    e.ProvisioningError,
		Documents:            toJSON(e.Documents),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func ToRequestEventEntity(m *model.RequestEventModel) *entity.RequestEvent {
	if m == nil {
		return nil
	}

	return &entity.RequestEvent{
		ID:         m.ID,
		RequestID:  m.RequestID,
		FromStatus: entity.RequestStatus(m.FromStatus),
		ToStatus:   entity.RequestStatus(m.ToStatus),
		ActorID:    m.ActorID,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

func ToRequestEventModel(e *entity.RequestEvent) *model.RequestEventModel {
	if e == nil {
		return nil
	}

	return &model.RequestEventModel{
		ID:         e.ID,
		RequestID:  e.RequestID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorID:    e.ActorID,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}

func ToAccountEntity(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	account := &entity.Account{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Type:          entity.AccountType(m.Type),
		BusinessName:  m.BusinessName,
		BusinessType:  m.BusinessType,
		ServiceType:   m.ServiceType,
		LicenseNumber: m.LicenseNumber,
		Status:        entity.AccountStatus(m.Status),
		Verification:  entity.VerificationStatus(m.Verification),
		Subscription: entity.Subscription{
			Tier:      entity.SubscriptionTier(m.SubscriptionTier),
			Status:    entity.SubscriptionStatus(m.SubscriptionStatus),
			ExpiresAt: m.SubscriptionExpiresAt,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	fromJSON(m.Features, &account.Subscription.Features)

	return account
}

func ToAccountModel(e *entity.Account) *model.AccountModel {
	if e == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                    e.ID,
		OwnerID:               e.OwnerID,
		Type:                  string(e.Type),
		BusinessName:          e.BusinessName,
		BusinessType:          e.BusinessType,
		ServiceType:           e.ServiceType,
		LicenseNumber:         e.LicenseNumber,
		Status:                string(e.Status),
		Verification:          string(e.Verification),
		SubscriptionTier:      string(e.Subscription.Tier),
		SubscriptionStatus:    string(e.Subscription.Status),
		SubscriptionExpiresAt: e.Subscription.ExpiresAt,
		Features:              toJSON(e.Subscription.Features),
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func ToListingEntity(m *model.ListingModel) *entity.Listing {
	if m == nil {
		return nil
	}

	return &entity.Listing{
		ID:        m.ID,
		AccountID: m.AccountID,
		Title:     m.Title,
		Price:     m.Price,
		Status:    entity.ListingStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func ToListingModel(e *entity.Listing) *model.ListingModel {
	if e == nil {
		return nil
	}

	return &model.ListingModel{
		ID:        e.ID,
		AccountID: e.AccountID,
		Title:     e.Title,
		Price:     e.Price,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
