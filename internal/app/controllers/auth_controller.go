package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/auth"
	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/services"
	"github.com/campushub/registra/internal/middleware"
)

// AuthController handles registration and authentication endpoints.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user account. An empty role defaults to Student.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	account, err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.Role, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(toAccountResponse(account)))
}

// Login godoc
// @Summary Authenticate
// @Description Verifies credentials and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	_, tokens, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.TokenResponse{
		AccessToken:      tokens.AccessToken,
		RefreshToken:     tokens.RefreshToken,
		ExpiresIn:        tokens.ExpiresIn,
		RefreshExpiresIn: tokens.RefreshExpiresIn,
		TokenType:        "Bearer",
	}))
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless; logout always succeeds and the client
// @Description discards its tokens.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.MessageResponse{Message: "logged out"}))
}

// Me godoc
// @Summary Current account
// @Description Returns the authenticated caller's account.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	identity := auth.CurrentIdentity(c)

	account, err := ctrl.authService.GetUserByUsername(c.Request.Context(), identity.Username)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(toAccountResponse(account)))
}
