package http

import (
	"net/http"

	"motorhub/internal/entity"
	"motorhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	entitlementUseCase usecase.EntitlementUseCase
}

func NewAccountHandler(entitlementUseCase usecase.EntitlementUseCase) *AccountHandler {
	return &AccountHandler{
		entitlementUseCase: entitlementUseCase,
	}
}

type UpgradeTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

// Get godoc
// @Summary      Get an account
// @Description  Fetch a privileged account with its subscription state
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      200  {object}  entity.Account
// @Failure      404  {object}  map[string]string
// @Router       /accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.entitlementUseCase.GetAccount(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpgradeTier godoc
// @Summary      Change the subscription tier
// @Description  Move the account to a new tier. Features are replaced wholesale from the tier table, so downgrades drop the flags the lower tier lacks.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Param        request body UpgradeTierRequest true "Target tier (basic, standard, premium)"
// @Success      200  {object}  entity.Account
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /accounts/{id}/subscription/upgrade [post]
func (h *AccountHandler) UpgradeTier(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpgradeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.entitlementUseCase.UpgradeTier(c.Param("id"), userID.(string), entity.SubscriptionTier(req.Tier))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// ListingEligibility godoc
// @Summary      Check listing quota
// @Description  Report whether the account may add another listing and how many slots remain
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      200  {object}  usecase.QuotaDecision
// @Failure      404  {object}  map[string]string
// @Router       /accounts/{id}/listing-eligibility [get]
func (h *AccountHandler) ListingEligibility(c *gin.Context) {
	decision, err := h.entitlementUseCase.CanAddListing(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// Features godoc
// @Summary      Get the account's feature snapshot
// @Description  Current tier, feature flags and expiry state of the account's subscription
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /accounts/{id}/features [get]
func (h *AccountHandler) Features(c *gin.Context) {
	account, err := h.entitlementUseCase.GetAccount(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tier":                account.Subscription.Tier,
		"subscription_status": account.Subscription.Status,
		"expires_at":          account.Subscription.ExpiresAt,
		"expired":             h.entitlementUseCase.IsSubscriptionExpired(account),
		"features":            account.Subscription.Features,
		"photography":         h.entitlementUseCase.CanHavePhotography(account),
		"reviews":             h.entitlementUseCase.CanHaveReviews(account),
		"podcasts":            h.entitlementUseCase.CanHavePodcasts(account),
		"videos":              h.entitlementUseCase.CanHaveVideos(account),
	})
}
