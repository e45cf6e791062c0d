package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"accverse/internal/models"
	"accverse/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary      List users
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.User
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		log.Printf("[users][list] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      List clients
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.User
// @Router       /clients [get]
func (h *UserHandler) ListClients(c *gin.Context) {
	clients, err := h.userService.ListClients()
	if err != nil {
		log.Printf("[users][clients] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}
	if clients == nil {
		clients = []*models.User{}
	}
	c.JSON(http.StatusOK, clients)
}
