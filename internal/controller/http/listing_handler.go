package http

import (
	"net/http"

	"motorhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingUseCase usecase.ListingUseCase
}

func NewListingHandler(listingUseCase usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type CreateListingRequest struct {
	Title string  `json:"title" binding:"required,min=3,max=255"`
	Price float64 `json:"price" binding:"gte=0"`
}

// Create godoc
// @Summary      Create a listing
// @Description  Create a listing on the caller's account. Refused when the subscription quota is reached.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateListingRequest true "Listing data"
// @Success      201  {object}  entity.Listing
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.listingUseCase.Create(userID.(string), req.Title, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// ListMine godoc
// @Summary      List own listings
// @Description  List all listings on the caller's account, newest first
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /listings [get]
func (h *ListingHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	listings, err := h.listingUseCase.ListMine(userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings, "count": len(listings)})
}
