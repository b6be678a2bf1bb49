package http

import (
	"net/http"
	"path/filepath"

	"motorhub/internal/entity"
	"motorhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoleRequestHandler struct {
	intakeUseCase usecase.RequestIntakeUseCase
}

func NewRoleRequestHandler(intakeUseCase usecase.RequestIntakeUseCase) *RoleRequestHandler {
	return &RoleRequestHandler{
		intakeUseCase: intakeUseCase,
	}
}

type SubmitRoleRequestRequest struct {
	RequestType string                `json:"request_type" binding:"required,oneof=dealer provider ministry coordinator"`
	Payload     entity.RequestPayload `json:"payload"`
}

// Submit godoc
// @Summary      Submit a role request
// @Description  Request elevation to a privileged account type. One pending request per type per user.
// @Tags         role-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitRoleRequestRequest true "Role request"
// @Success      201  {object}  entity.RoleRequest
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /role-requests [post]
func (h *RoleRequestHandler) Submit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmitRoleRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.intakeUseCase.Submit(userID.(string), entity.RequestType(req.RequestType), req.Payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListMine godoc
// @Summary      List own role requests
// @Description  List all role requests submitted by the current user, newest first
// @Tags         role-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /role-requests/mine [get]
func (h *RoleRequestHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requests, err := h.intakeUseCase.ListByUser(userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

// AttachDocument godoc
// @Summary      Attach a verification document
// @Description  Upload a supporting document (license scan, accreditation) to an own pending role request
// @Tags         role-requests
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Role request ID"
// @Param        document formData file true "Verification document"
// @Success      200  {object}  entity.RoleRequest
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /role-requests/{id}/documents [post]
func (h *RoleRequestHandler) AttachDocument(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	requestID := c.Param("id")

	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".pdf" && ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document format. Only pdf, jpg, jpeg, png are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	request, err := h.intakeUseCase.AttachDocument(requestID, userID.(string), src, file.Filename, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
