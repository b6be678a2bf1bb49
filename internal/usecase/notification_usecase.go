package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"motorhub/internal/entity"
	"motorhub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	notificationTTL        = 30 * 24 * time.Hour
	notificationListCap    = 99
	notificationTypeDecide = "role_request_decided"
)

type NotificationUseCase interface {
	GetNotifications(userID string, limit, offset int) ([]entity.Notification, int64, error)
	HandleDecisionTask(task map[string]interface{}) error
}

type notificationUseCase struct {
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewNotificationUseCase(redisClient *redis.Client, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *notificationUseCase) GetNotifications(userID string, limit, offset int) ([]entity.Notification, int64, error) {
	if uc.redisClient == nil {
		return []entity.Notification{}, 0, nil
	}

	ctx := context.Background()
	userNotificationsKey := fmt.Sprintf("notifications:%s", userID)

	items, err := uc.redisClient.LRange(ctx, userNotificationsKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	var notifications []entity.Notification
	for _, notifJSON := range items {
		var notification entity.Notification
		if err := json.Unmarshal([]byte(notifJSON), &notification); err == nil {
			notifications = append(notifications, notification)
		}
	}

	totalCount, _ := uc.redisClient.LLen(ctx, userNotificationsKey).Result()

	return notifications, totalCount, nil
}

// HandleDecisionTask consumes one role_request_decided task from the
// queue and turns it into an in-app notification for the applicant.
func (uc *notificationUseCase) HandleDecisionTask(task map[string]interface{}) error {
	userID, _ := task["user_id"].(string)
	requestID, _ := task["request_id"].(string)
	requestType, _ := task["request_type"].(string)
	status, _ := task["status"].(string)

	if userID == "" || requestID == "" || status == "" {
		uc.logger.Error("[DECISION HANDLER] Invalid decision task: missing user_id, request_id or status, task=%+v", task)
		return fmt.Errorf("invalid task: missing required fields")
	}

	var title, message string
	switch status {
	case string(entity.RequestStatusApproved):
		title = "Role Request Approved"
		message = fmt.Sprintf("Your %s request has been approved. Your new privileges are active.", requestType)
	case string(entity.RequestStatusRejected):
		title = "Role Request Rejected"
		message = fmt.Sprintf("Your %s request has been rejected. Check the review notes for details.", requestType)
	default:
		uc.logger.Error("[DECISION HANDLER] Unknown decision status %q in task=%+v", status, task)
		return fmt.Errorf("invalid task: unknown status %q", status)
	}

	notification := &entity.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationTypeDecide,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Data: map[string]interface{}{
			"request_id":   requestID,
			"request_type": requestType,
			"status":       status,
		},
	}

	if err := uc.sendNotificationToRedis(notification); err != nil {
		uc.logger.Error("[DECISION HANDLER] Failed to deliver decision notification to user %s: %v", userID, err)
		return err
	}

	uc.logger.Info("[DECISION HANDLER] Delivered %s notification for request %s to user %s", status, requestID, userID)
	return nil
}

func (uc *notificationUseCase) sendNotificationToRedis(notification *entity.Notification) error {
	if uc.redisClient == nil {
		return fmt.Errorf("redis client is not available")
	}

	notificationJSON, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx := context.Background()
	userNotificationsKey := fmt.Sprintf("notifications:%s", notification.UserID)
	if err := uc.redisClient.LPush(ctx, userNotificationsKey, notificationJSON).Err(); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	uc.redisClient.LTrim(ctx, userNotificationsKey, 0, notificationListCap)
	uc.redisClient.Expire(ctx, userNotificationsKey, notificationTTL)

	// Live delivery for connected clients
	if err := uc.redisClient.Publish(ctx, userNotificationsKey, notificationJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
