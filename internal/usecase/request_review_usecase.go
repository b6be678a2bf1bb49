package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"
	"motorhub/pkg/logger"
	"motorhub/pkg/metrics"
	"motorhub/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const decisionEventChannel = "decision_events"

type RequestReviewUseCase interface {
	Decide(requestID string, status entity.RequestStatus, reviewerID, notes string) (*entity.RoleRequest, error)
	Reprovision(requestID, actorID string) (*entity.RoleRequest, error)
}

type requestReviewUseCase struct {
	requestRepo persistent.RoleRequestRepository
	provisioner Provisioner
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewRequestReviewUseCase(
	requestRepo persistent.RoleRequestRepository,
	provisioner Provisioner,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) RequestReviewUseCase {
	return &requestReviewUseCase{
		requestRepo: requestRepo,
		provisioner: provisioner,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Decide settles a pending request. Approval provisions synchronously,
// but a provisioning failure does not undo the approval: the error is
// recorded on the request and operators reconcile via Reprovision.
func (uc *requestReviewUseCase) Decide(requestID string, status entity.RequestStatus, reviewerID, notes string) (*entity.RoleRequest, error) {
	if status != entity.RequestStatusApproved && status != entity.RequestStatusRejected {
		return nil, apperr.Newf(apperr.KindInvalidStatus, "decision status must be approved or rejected, got %s", status)
	}

	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "role request not found")
		}
		return nil, err
	}

	if request.Status != entity.RequestStatusPending {
		return nil, apperr.Newf(apperr.KindInvalidStatus, "request has already been %s", request.Status)
	}

	now := time.Now()
	request.Status = status
	request.ReviewerID = reviewerID
	request.ReviewNotes = notes
	request.ReviewedAt = &now

	event := &entity.RequestEvent{
		FromStatus: entity.RequestStatusPending,
		ToStatus:   status,
		ActorID:    reviewerID,
		Note:       notes,
	}
	if err := uc.requestRepo.UpdateWithEvent(request, event); err != nil {
		uc.logger.Error("Failed to record decision on request %s: %v", requestID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to record decision")
	}

	metrics.RequestsDecided.WithLabelValues(string(status)).Inc()
	uc.logger.Info("Request %s %s by reviewer %s", requestID, status, reviewerID)

	if status == entity.RequestStatusRejected {
		uc.publishDecisionTask(request)
		return request, nil
	}

	return uc.provision(request, reviewerID)
}

// Reprovision re-runs provisioning for an approved request whose
// provisioning step failed. Provision handlers create before they
// mutate, so the retry is safe.
func (uc *requestReviewUseCase) Reprovision(requestID, actorID string) (*entity.RoleRequest, error) {
	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "role request not found")
		}
		return nil, err
	}

	if request.Status != entity.RequestStatusApproved || request.AssociatedEntityID != "" {
		return nil, apperr.New(apperr.KindInvalidStatus, "request is not awaiting provisioning")
	}

	return uc.provision(request, actorID)
}

func (uc *requestReviewUseCase) provision(request *entity.RoleRequest, actorID string) (*entity.RoleRequest, error) {
	entityID, err := uc.provisioner.Provision(request)
	if err != nil {
		request.ProvisioningError = err.Error()
		event := &entity.RequestEvent{
			FromStatus: entity.RequestStatusApproved,
			ToStatus:   entity.RequestStatusApproved,
			ActorID:    actorID,
			Note:       fmt.Sprintf("provisioning failed: %v", err),
		}
		if updateErr := uc.requestRepo.UpdateWithEvent(request, event); updateErr != nil {
			uc.logger.Error("Failed to record provisioning error on request %s: %v", request.ID, updateErr)
		}

		metrics.ProvisioningFailures.Inc()
		uc.logger.Error("Provisioning failed for approved request %s, approval kept: %v", request.ID, err)
		return request, nil
	}

	request.AssociatedEntityID = entityID
	request.ProvisioningError = ""
	event := &entity.RequestEvent{
		FromStatus: entity.RequestStatusApproved,
		ToStatus:   entity.RequestStatusApproved,
		ActorID:    actorID,
		Note:       "provisioning completed",
	}
	if err := uc.requestRepo.UpdateWithEvent(request, event); err != nil {
		uc.logger.Error("Failed to link provisioned entity to request %s: %v", request.ID, err)
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to link provisioned entity")
	}

	uc.publishDecisionTask(request)
	uc.publishFanoutEvent(request)
	return request, nil
}

func (uc *requestReviewUseCase) publishDecisionTask(request *entity.RoleRequest) {
	if uc.queueClient == nil {
		return
	}

	task := map[string]interface{}{
		"type":         "role_request_decided",
		"user_id":      request.UserID,
		"request_id":   request.ID,
		"request_type": string(request.RequestType),
		"status":       string(request.Status),
		"priority":     queuePriority(request.Priority),
	}

	go func() {
		uc.logger.Info("[DECISION QUEUE] Publishing decision task: request_id=%s, status=%s", request.ID, request.Status)
		if err := uc.queueClient.PublishDecisionTask(task); err != nil {
			uc.logger.Error("[DECISION QUEUE] Failed to publish decision task for request %s: %v", request.ID, err)
		}
	}()
}

func (uc *requestReviewUseCase) publishFanoutEvent(request *entity.RoleRequest) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	eventKey := fmt.Sprintf("decision:request:%s", request.ID)
	if err := uc.redisClient.Publish(ctx, decisionEventChannel, eventKey).Err(); err != nil {
		uc.logger.Warn("Failed to publish decision event for request %s: %v", request.ID, err)
	}
}

// queuePriority maps review priority onto the broker's 0-10 scale.
func queuePriority(priority entity.RequestPriority) int {
	switch priority {
	case entity.PriorityHigh:
		return 8
	case entity.PriorityMedium:
		return 5
	default:
		return 1
	}
}
