package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menstrualmentor/backend/internal/apierror"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/repository"
	"github.com/menstrualmentor/backend/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBindingError(apierror.GetRequestID(c), err))
		return
	}

	authResp, err := h.authService.Login(c.Request.Context(), &req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		apierror.WriteProblem(c, apierror.NewInvalidCredentialsError(apierror.GetRequestID(c)))
		return
	}
	if err != nil {
		writeInternal(c, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, authResp)
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBindingError(apierror.GetRequestID(c), err))
		return
	}

	authResp, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		// Supabase answers 4xx for duplicate emails and weak passwords
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), err.Error(), "Could not create the account"))
		return
	}

	c.JSON(http.StatusCreated, authResp)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp := models.MeResponse{
		User: models.User{ID: userID, Email: c.GetString("user_email")},
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	switch {
	case err == nil:
		resp.Profile = profile
	case !errors.Is(err, repository.ErrNotFound):
		writeInternal(c, "failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
