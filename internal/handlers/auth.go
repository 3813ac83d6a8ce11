package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"campusq/internal/models"
	"campusq/internal/response"
	"campusq/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AccessSecret returns the access-token signing key. Secrets are read
// per call, not at package init, so godotenv.Load in main has populated
// the environment before the first token is signed or verified.
func AccessSecret() []byte {
	return []byte(os.Getenv("JWT_ACCESS_SECRET"))
}

func refreshSecret() []byte {
	return []byte(os.Getenv("JWT_REFRESH_SECRET"))
}

// AuthHandler serves administrator registration and token issuance over
// an injected account store.
type AuthHandler struct {
	admins store.AdminStore
}

func NewAuthHandler(admins store.AdminStore) *AuthHandler {
	return &AuthHandler{admins: admins}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary		Register an administrator
// @Description	Creates an administrator account for managing queues
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			admin	body		RegisterRequest				true	"Administrator data"
// @Success		201		{object}	response.SuccessResponse	"Registered"
// @Failure		400		{object}	response.ErrorResponse		"Validation error (VALIDATION_ERROR) or email taken (EMAIL_EXISTS)"
// @Failure		500		{object}	response.ErrorResponse		"Server error (PASSWORD_HASH_ERROR, DB_ERROR)"
// @Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid registration data",
			Details: err.Error(),
		})
		return
	}

	_, err := h.admins.GetAdminByEmail(c.Request.Context(), req.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "EMAIL_EXISTS",
			Message: "An account with this email already exists",
		})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Failed to check existing accounts",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "PASSWORD_HASH_ERROR",
			Message: "Failed to hash password",
		})
		return
	}

	admin := models.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := h.admins.CreateAdmin(c.Request.Context(), &admin); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Failed to create account",
		})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Administrator registered successfully",
	})
}

// Login godoc
// @Summary		Administrator login
// @Description	Authenticates an administrator and returns a token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			admin	body		LoginRequest			true	"Credentials"
// @Success		200		{object}	response.TokenResponse	"Authenticated"
// @Failure		400		{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR)"
// @Failure		401		{object}	response.ErrorResponse	"Bad credentials (INVALID_CREDENTIALS)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (TOKEN_GENERATION_ERROR)"
// @Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid login data",
			Details: err.Error(),
		})
		return
	}

	admin, err := h.admins.GetAdminByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_CREDENTIALS",
			Message: "Wrong email or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_CREDENTIALS",
			Message: "Wrong email or password",
		})
		return
	}

	accessToken, err := generateToken(admin.ID, time.Minute*15, AccessSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Failed to generate access token",
		})
		return
	}

	refreshToken, err := generateToken(admin.ID, time.Hour*24*7, refreshSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Failed to generate refresh token",
		})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func generateToken(adminID uint, duration time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken godoc
// @Summary		Refresh the access token
// @Description	Exchanges a refresh token for a new token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			refresh_token	body		RefreshTokenRequest		true	"Refresh token"
// @Success		200				{object}	response.TokenResponse	"New token pair"
// @Failure		400				{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR)"
// @Failure		401				{object}	response.ErrorResponse	"Invalid or expired refresh token (INVALID_REFRESH_TOKEN, ADMIN_NOT_FOUND)"
// @Failure		500				{object}	response.ErrorResponse	"Server error (TOKEN_GENERATION_ERROR)"
// @Router			/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid refresh data",
			Details: err.Error(),
		})
		return
	}

	token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return refreshSecret(), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Invalid or expired refresh token",
		})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Invalid or expired refresh token",
		})
		return
	}

	adminIDFloat, ok := claims["admin_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Invalid or expired refresh token",
		})
		return
	}

	adminID := uint(adminIDFloat)

	admin, err := h.admins.GetAdminByID(c.Request.Context(), adminID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "ADMIN_NOT_FOUND",
			Message: "Administrator not found",
		})
		return
	}

	newAccessToken, err := generateToken(admin.ID, time.Minute*15, AccessSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Failed to generate access token",
		})
		return
	}

	newRefreshToken, err := generateToken(adminID, time.Hour*24*7, refreshSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Failed to generate refresh token",
		})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}
