package http

import (
	"net/http"
	"strconv"

	"motorhub/internal/entity"
	"motorhub/internal/repo/persistent"
	"motorhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	intakeUseCase usecase.RequestIntakeUseCase
	reviewUseCase usecase.RequestReviewUseCase
}

func NewReviewHandler(intakeUseCase usecase.RequestIntakeUseCase, reviewUseCase usecase.RequestReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		intakeUseCase: intakeUseCase,
		reviewUseCase: reviewUseCase,
	}
}

type DecisionRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Notes  string `json:"notes"`
}

// List godoc
// @Summary      List role requests
// @Description  List role requests with optional status/type filters, newest first
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status (pending, approved, rejected)"
// @Param        type query string false "Filter by request type (dealer, provider, ministry, coordinator)"
// @Param        limit query int false "Page size (default 20)"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/role-requests [get]
func (h *ReviewHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	requests, total, err := h.intakeUseCase.List(persistent.RoleRequestFilter{
		Status:      c.Query("status"),
		RequestType: c.Query("type"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// Get godoc
// @Summary      Get a role request with its event history
// @Description  Fetch one role request and the full log of its status transitions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Role request ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/role-requests/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	request, events, err := h.intakeUseCase.GetWithEvents(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request, "events": events})
}

// Decide godoc
// @Summary      Decide a role request
// @Description  Approve or reject a pending role request. Approval provisions the privileged account; a provisioning failure keeps the approval and records the error on the request.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Role request ID"
// @Param        request body DecisionRequest true "Decision"
// @Success      200  {object}  entity.RoleRequest
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/role-requests/{id}/decision [post]
func (h *ReviewHandler) Decide(c *gin.Context) {
	reviewerID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.reviewUseCase.Decide(c.Param("id"), entity.RequestStatus(req.Status), reviewerID.(string), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// Reprovision godoc
// @Summary      Re-run provisioning for an approved request
// @Description  Retry the provisioning step of an approved request that failed to provision. Safe to repeat.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Role request ID"
// @Success      200  {object}  entity.RoleRequest
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/role-requests/{id}/reprovision [post]
func (h *ReviewHandler) Reprovision(c *gin.Context) {
	actorID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.reviewUseCase.Reprovision(c.Param("id"), actorID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
