package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accverse/internal/models"
	"accverse/internal/services"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// @Summary      List appointments (admin)
// @Tags         Booking
// @Produce      json
// @Security     BearerAuth
// @Router       /appointments [get]
func (h *BookingHandler) ListAppointments(c *gin.Context) {
	appts, err := h.bookingService.ListAppointments()
	if err != nil {
		log.Printf("[booking][appointments] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}
	if appts == nil {
		appts = []*models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// @Summary      List bookable services
// @Tags         Booking
// @Produce      json
// @Security     BearerAuth
// @Router       /services [get]
func (h *BookingHandler) ListServices(c *gin.Context) {
	services, err := h.bookingService.ListServices()
	if err != nil {
		log.Printf("[booking][services] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}
	if services == nil {
		services = []*models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// @Summary      Update a service (admin)
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Router       /services/{id} [put]
func (h *BookingHandler) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service id"})
		return
	}
	var req models.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Duration == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and duration are required."})
		return
	}
	if err := h.bookingService.UpdateService(id, req.Name, *req.Duration); err != nil {
		log.Printf("[booking][service-update] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary      Booking configuration (admin)
// @Tags         Booking
// @Produce      json
// @Security     BearerAuth
// @Router       /booking-config [get]
func (h *BookingHandler) GetBookingConfig(c *gin.Context) {
	cfg, err := h.bookingService.BookingConfig()
	if err != nil {
		log.Printf("[booking][config] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking configuration"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary      Update booking configuration (admin)
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Router       /booking-config/{id} [put]
func (h *BookingHandler) UpdateBookingConfig(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid config id"})
		return
	}
	var req models.BookingConfigUpdate
	if err := c.ShouldBindJSON(&req); err != nil || !req.Complete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}
	if err := h.bookingService.UpdateBookingConfig(id, &req); err != nil {
		log.Printf("[booking][config-update] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking configuration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
