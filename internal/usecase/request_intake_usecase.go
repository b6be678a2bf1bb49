package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"
	"reflect"
	"strings"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"
	"motorhub/pkg/logger"
	"motorhub/pkg/metrics"
	"motorhub/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Per-type payload shapes. Submission is validated against the shape
// for its request type, extra fields are ignored.
type DealerPayload struct {
	BusinessName  string `json:"business_name" validate:"required"`
	BusinessType  string `json:"business_type" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
}

type ProviderPayload struct {
	ServiceType     string `json:"service_type" validate:"required"`
	BusinessName    string `json:"business_name" validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0"`
}

type MinistryPayload struct {
	MinistryName string `json:"ministry_name" validate:"required"`
	Department   string `json:"department" validate:"required"`
	Position     string `json:"position" validate:"required"`
	EmployeeID   string `json:"employee_id" validate:"required"`
}

type CoordinatorPayload struct {
	StationName         string `json:"station_name" validate:"required"`
	TransportExperience string `json:"transport_experience" validate:"required"`
}

// requestPriorities ranks how urgently each request type should be
// reviewed.
var requestPriorities = map[entity.RequestType]entity.RequestPriority{
	entity.RequestTypeMinistry:    entity.PriorityHigh,
	entity.RequestTypeDealer:      entity.PriorityHigh,
	entity.RequestTypeProvider:    entity.PriorityMedium,
	entity.RequestTypeCoordinator: entity.PriorityMedium,
}

type RequestIntakeUseCase interface {
	Submit(userID string, requestType entity.RequestType, payload entity.RequestPayload) (*entity.RoleRequest, error)
	List(filter persistent.RoleRequestFilter) ([]*entity.RoleRequest, int64, error)
	ListByUser(userID string) ([]*entity.RoleRequest, error)
	GetWithEvents(requestID string) (*entity.RoleRequest, []*entity.RequestEvent, error)
	AttachDocument(requestID, userID string, file multipart.File, filename, contentType string) (*entity.RoleRequest, error)
}

type requestIntakeUseCase struct {
	requestRepo   persistent.RoleRequestRepository
	userRepo      persistent.UserRepository
	storageClient *storage.Client
	validate      *validator.Validate
	validators    map[entity.RequestType]func(entity.RequestPayload) error
	logger        *logger.Logger
}

func NewRequestIntakeUseCase(
	requestRepo persistent.RoleRequestRepository,
	userRepo persistent.UserRepository,
	storageClient *storage.Client,
	logger *logger.Logger,
) RequestIntakeUseCase {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	uc := &requestIntakeUseCase{
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		storageClient: storageClient,
		validate:      validate,
		logger:        logger,
	}
	uc.validators = map[entity.RequestType]func(entity.RequestPayload) error{
		entity.RequestTypeDealer:      uc.validateDealer,
		entity.RequestTypeProvider:    uc.validateProvider,
		entity.RequestTypeMinistry:    uc.validateMinistry,
		entity.RequestTypeCoordinator: uc.validateCoordinator,
	}
	return uc
}

func (uc *requestIntakeUseCase) Submit(userID string, requestType entity.RequestType, payload entity.RequestPayload) (*entity.RoleRequest, error) {
	validatePayload, ok := uc.validators[requestType]
	if !ok {
		return nil, apperr.Newf(apperr.KindValidation, "unsupported request type: %s", requestType)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, err
	}

	if user.Role == entity.UserRole(requestType) {
		return nil, apperr.Newf(apperr.KindAlreadyHasRole, "user already has the %s role", requestType)
	}

	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	_, err = uc.requestRepo.GetPendingByUserAndType(userID, requestType)
	if err == nil {
		return nil, apperr.Newf(apperr.KindDuplicateRequest, "a pending %s request already exists", requestType)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := &entity.RoleRequest{
		UserID:               userID,
		RequestType:          requestType,
		Status:               entity.RequestStatusPending,
		Payload:              payload,
		Priority:             requestPriorities[requestType],
		AutoApprovalEligible: autoApprovalEligible(requestType, payload),
	}
	event := &entity.RequestEvent{
		ToStatus: entity.RequestStatusPending,
		ActorID:  userID,
		Note:     "request submitted",
	}

	if err := uc.requestRepo.CreateWithEvent(request, event); err != nil {
		// Losing side of a concurrent duplicate submit hits the
		// partial unique index instead of the pre-check above.
		if persistent.IsDuplicateKeyError(err) {
			return nil, apperr.Newf(apperr.KindDuplicateRequest, "a pending %s request already exists", requestType)
		}
		uc.logger.Error("Failed to create role request for user %s: %v", userID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to create role request")
	}

	metrics.RequestsSubmitted.WithLabelValues(string(requestType)).Inc()
	uc.logger.Info("Role request %s submitted: user=%s, type=%s, priority=%s, auto_approval_eligible=%t",
		request.ID, userID, requestType, request.Priority, request.AutoApprovalEligible)
	return request, nil
}

func (uc *requestIntakeUseCase) List(filter persistent.RoleRequestFilter) ([]*entity.RoleRequest, int64, error) {
	return uc.requestRepo.List(filter)
}

func (uc *requestIntakeUseCase) ListByUser(userID string) ([]*entity.RoleRequest, error) {
	requests, _, err := uc.requestRepo.List(persistent.RoleRequestFilter{UserID: userID})
	return requests, err
}

func (uc *requestIntakeUseCase) GetWithEvents(requestID string) (*entity.RoleRequest, []*entity.RequestEvent, error) {
	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.New(apperr.KindNotFound, "role request not found")
		}
		return nil, nil, err
	}

	events, err := uc.requestRepo.ListEvents(requestID)
	if err != nil {
		return nil, nil, err
	}
	return request, events, nil
}

func (uc *requestIntakeUseCase) AttachDocument(requestID, userID string, file multipart.File, filename, contentType string) (*entity.RoleRequest, error) {
	if uc.storageClient == nil {
		return nil, apperr.New(apperr.KindInternal, "document storage is unavailable")
	}

	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "role request not found")
		}
		return nil, err
	}

	if request.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden, "request belongs to another user")
	}
	if request.Status != entity.RequestStatusPending {
		return nil, apperr.New(apperr.KindInvalidStatus, "documents can only be attached to pending requests")
	}

	key := fmt.Sprintf("role-requests/%s/%s-%s", requestID, uuid.New().String(), filename)
	url, err := uc.storageClient.UploadDocument(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload document for request %s: %v", requestID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to upload document")
	}

	request.Documents = append(request.Documents, url)
	if err := uc.requestRepo.Update(request); err != nil {
		uc.logger.Error("Failed to attach document to request %s: %v", requestID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to attach document")
	}

	uc.logger.Info("Document attached to request %s by user %s", requestID, userID)
	return request, nil
}

func (uc *requestIntakeUseCase) validateDealer(p entity.RequestPayload) error {
	return uc.validationError(uc.validate.Struct(DealerPayload{
		BusinessName:  p.BusinessName,
		BusinessType:  p.BusinessType,
		LicenseNumber: p.LicenseNumber,
	}), entity.RequestTypeDealer)
}

func (uc *requestIntakeUseCase) validateProvider(p entity.RequestPayload) error {
	return uc.validationError(uc.validate.Struct(ProviderPayload{
		ServiceType:     p.ServiceType,
		BusinessName:    p.BusinessName,
		ExperienceYears: p.ExperienceYears,
	}), entity.RequestTypeProvider)
}

func (uc *requestIntakeUseCase) validateMinistry(p entity.RequestPayload) error {
	return uc.validationError(uc.validate.Struct(MinistryPayload{
		MinistryName: p.MinistryName,
		Department:   p.Department,
		Position:     p.Position,
		EmployeeID:   p.EmployeeID,
	}), entity.RequestTypeMinistry)
}

func (uc *requestIntakeUseCase) validateCoordinator(p entity.RequestPayload) error {
	return uc.validationError(uc.validate.Struct(CoordinatorPayload{
		StationName:         p.StationName,
		TransportExperience: p.TransportExperience,
	}), entity.RequestTypeCoordinator)
}

func (uc *requestIntakeUseCase) validationError(err error, requestType entity.RequestType) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fieldErr.Field())
		}
		return apperr.Newf(apperr.KindValidation, "invalid %s request payload: %s", requestType, strings.Join(fields, ", "))
	}
	return apperr.Wrap(err, apperr.KindValidation, "invalid request payload")
}

// autoApprovalEligible flags requests a future fast-track could
// approve without review. Informational only, nothing acts on it.
func autoApprovalEligible(requestType entity.RequestType, payload entity.RequestPayload) bool {
	return requestType == entity.RequestTypeProvider && payload.ExperienceYears >= 2
}
