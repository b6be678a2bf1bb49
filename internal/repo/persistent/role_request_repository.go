package persistent

import (
	"errors"

	"motorhub/internal/entity"
	"motorhub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// RoleRequestFilter narrows admin listings. Zero values mean "any".
type RoleRequestFilter struct {
	Status      string
	RequestType string
	UserID      string
	Limit       int
	Offset      int
}

type RoleRequestRepository interface {
	CreateWithEvent(request *entity.RoleRequest, event *entity.RequestEvent) error
	GetByID(id string) (*entity.RoleRequest, error)
	GetPendingByUserAndType(userID string, requestType entity.RequestType) (*entity.RoleRequest, error)
	List(filter RoleRequestFilter) ([]*entity.RoleRequest, int64, error)
	Update(request *entity.RoleRequest) error
	UpdateWithEvent(request *entity.RoleRequest, event *entity.RequestEvent) error
	ListEvents(requestID string) ([]*entity.RequestEvent, error)
}

type roleRequestRepository struct {
	db *gorm.DB
}

func NewRoleRequestRepository(db *gorm.DB) RoleRequestRepository {
	return &roleRequestRepository{db: db}
}

// CreateWithEvent inserts the request and its opening event in one
// transaction. The partial unique index on pending (user_id,
// request_type) makes the insert the final word on duplicates.
func (r *roleRequestRepository) CreateWithEvent(request *entity.RoleRequest, event *entity.RequestEvent) error {
	requestModel := ToRoleRequestModel(request)
	if requestModel.ID == "" {
		requestModel.ID = uuid.New().String()
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(requestModel).Error; err != nil {
			return err
		}
		eventModel := ToRequestEventModel(event)
		eventModel.RequestID = requestModel.ID
		return tx.Create(eventModel).Error
	})
	if err != nil {
		return err
	}

	*request = *ToRoleRequestEntity(requestModel)
	return nil
}

func (r *roleRequestRepository) GetByID(id string) (*entity.RoleRequest, error) {
	var requestModel model.RoleRequestModel
	if err := r.db.Where("id = ?", id).First(&requestModel).Error; err != nil {
		return nil, err
	}
	return ToRoleRequestEntity(&requestModel), nil
}

func (r *roleRequestRepository) GetPendingByUserAndType(userID string, requestType entity.RequestType) (*entity.RoleRequest, error) {
	var requestModel model.RoleRequestModel
	err := r.db.Where("user_id = ? AND request_type = ? AND status = ?",
		userID, string(requestType), string(entity.RequestStatusPending)).
		First(&requestModel).Error
	if err != nil {
		return nil, err
	}
	return ToRoleRequestEntity(&requestModel), nil
}

func (r *roleRequestRepository) List(filter RoleRequestFilter) ([]*entity.RoleRequest, int64, error) {
	query := r.db.Model(&model.RoleRequestModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RequestType != "" {
		query = query.Where("request_type = ?", filter.RequestType)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var requestModels []model.RoleRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]*entity.RoleRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = ToRoleRequestEntity(&requestModels[i])
	}
	return requests, total, nil
}

func (r *roleRequestRepository) Update(request *entity.RoleRequest) error {
	return r.db.Save(ToRoleRequestModel(request)).Error
}

// UpdateWithEvent persists a status change and its event in one
// transaction so the event log never drifts from request state.
func (r *roleRequestRepository) UpdateWithEvent(request *entity.RoleRequest, event *entity.RequestEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ToRoleRequestModel(request)).Error; err != nil {
			return err
		}
		eventModel := ToRequestEventModel(event)
		eventModel.RequestID = request.ID
		return tx.Create(eventModel).Error
	})
}

func (r *roleRequestRepository) ListEvents(requestID string) ([]*entity.RequestEvent, error) {
	var eventModels []model.RequestEventModel
	if err := r.db.Where("request_id = ?", requestID).Order("created_at ASC").Find(&eventModels).Error; err != nil {
		return nil, err
	}

	events := make([]*entity.RequestEvent, len(eventModels))
	for i := range eventModels {
		events[i] = ToRequestEventEntity(&eventModels[i])
	}
	return events, nil
}

// IsDuplicateKeyError reports whether the error is a Postgres unique
// violation, the losing side of a concurrent duplicate submit.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
