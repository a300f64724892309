package handlers

import (
	"strconv"

	"newscheck-backend/helper"
	"newscheck-backend/models"
	"newscheck-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: httpHelper}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login successful", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

func (h *AuthHandler) GetUsers(c *gin.Context) {
	users, err := h.authService.GetUsers()
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", users)
}

func (h *AuthHandler) GetRoles(c *gin.Context) {
	roles := []map[string]string{
		{"role": "Admin"},
		{"role": "Member"},
		{"role": "Reader"},
	}

	h.Helper.SendSuccess(c, "Success", roles)
}

func (h *AuthHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.UpdateRole(uint(id), req.Role)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Role updated to "+user.Role, user)
}

func (h *AuthHandler) HideUser(c *gin.Context) {
	h.setUserVisibility(c, false, "User hidden successfully")
}

func (h *AuthHandler) ShowUser(c *gin.Context) {
	h.setUserVisibility(c, true, "User shown successfully")
}

func (h *AuthHandler) setUserVisibility(c *gin.Context, visible bool, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.SetUserVisibility(uint(id), visible)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, message, user)
}
