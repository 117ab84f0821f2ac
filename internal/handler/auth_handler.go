package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-forum-api/internal/models"
	"github.com/noah-isme/school-forum-api/internal/service"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
	"github.com/noah-isme/school-forum-api/pkg/response"
)

type authService interface {
	LoginStudent(ctx context.Context, userID, password string) (*models.Account, error)
	LoginTeacher(ctx context.Context, userID, password string) (*models.Account, error)
	LoginAdmin(ctx context.Context, userID, password string) (*models.Account, error)
	Register(ctx context.Context, req service.RegisterRequest) error
}

// AuthHandler exposes the login and sign-up endpoints.
type AuthHandler struct {
	auth authService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth authService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type credentialsRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// LoginStudent godoc
// @Summary Student login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /login-check-student [post]
func (h *AuthHandler) LoginStudent(c *gin.Context) {
	h.login(c, h.auth.LoginStudent)
}

// LoginTeacher godoc
// @Summary Teacher login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /login-check-teacher [post]
func (h *AuthHandler) LoginTeacher(c *gin.Context) {
	h.login(c, h.auth.LoginTeacher)
}

// LoginAdmin godoc
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /login-check-admin [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, h.auth.LoginAdmin)
}

func (h *AuthHandler) login(c *gin.Context, check func(context.Context, string, string) (*models.Account, error)) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials"))
		return
	}

	account, err := check(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Login successful", "user": account})
}

// SignUp godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body service.RegisterRequest true "Account payload"
// @Success 200 {object} map[string]interface{}
// @Router /sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "Missing required fields"))
		return
	}

	if err := h.auth.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Account created successfully!"})
}
