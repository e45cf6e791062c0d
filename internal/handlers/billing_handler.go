package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accverse/internal/models"
	"accverse/internal/services"
)

type BillingHandler struct {
	billingService services.BillingService
}

func NewBillingHandler(billingService services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// @Summary      Payments for a user
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Router       /form-payments/user/{user_id} [get]
func (h *BillingHandler) GetUserPayments(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if !mayAccessUser(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	payments, err := h.billingService.PaymentsForUser(userID)
	if err != nil {
		log.Printf("[billing][user-payments] query failed userID=%d: err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch form payments"})
		return
	}
	if payments == nil {
		payments = []*models.FormPayment{}
	}
	c.JSON(http.StatusOK, payments)
}

// @Summary      All payments (admin)
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Router       /form-payments [get]
func (h *BillingHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.billingService.AllPayments()
	if err != nil {
		log.Printf("[billing][all-payments] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch form payments"})
		return
	}
	if payments == nil {
		payments = []*models.FormPayment{}
	}
	c.JSON(http.StatusOK, payments)
}

// @Summary      Pricing configurations (admin)
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Router       /form-pricing-configs [get]
func (h *BillingHandler) GetPricingConfigs(c *gin.Context) {
	configs, err := h.billingService.PricingConfigs()
	if err != nil {
		log.Printf("[billing][pricing] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pricing configurations"})
		return
	}
	if configs == nil {
		configs = []*models.FormPricingConfig{}
	}
	c.JSON(http.StatusOK, configs)
}

// @Summary      Update a pricing configuration (admin)
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Router       /form-pricing-configs/{id} [put]
func (h *BillingHandler) UpdatePricingConfig(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid config id"})
		return
	}
	var req models.FormPricingConfigUpdate
	if err := c.ShouldBindJSON(&req); err != nil || req.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	updated, err := h.billingService.UpdatePricingConfig(id, &req)
	if err != nil || updated == nil {
		log.Printf("[billing][pricing-update] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pricing configuration"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
