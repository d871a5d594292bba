package http

import (
	"errors"
	"net/http"
	"time"

	"workforce_project/internal/apperr"
	"workforce_project/internal/config"
	"workforce_project/internal/domain"
	"workforce_project/internal/middleware"
	"workforce_project/internal/repository"
	"workforce_project/internal/utils"
	"workforce_project/internal/utils/blacklist"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Employees *repository.EmployeeRepository
	Blacklist blacklist.Blacklist
	JWT       config.JWTConfig
}

func NewAuthHandler(employees *repository.EmployeeRepository, bl blacklist.Blacklist, jwt config.JWTConfig) *AuthHandler {
	return &AuthHandler{Employees: employees, Blacklist: bl, JWT: jwt}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "All fields are required")
		return
	}

	ctx := c.Request.Context()

	exists, err := h.Employees.ExistsByEmail(ctx, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if exists {
		respondError(c, apperr.ErrEmailExists)
		return
	}

	id := utils.NewID()

	refreshToken, err := utils.GenerateRefreshToken(id, h.JWT.RefreshSecret, h.JWT.RefreshExpiry)
	if err != nil {
		respondError(c, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	employee := &domain.Employee{
		ID:           id,
		Name:         req.Name,
		Age:          req.Age,
		Email:        req.Email,
		Password:     hashed,
		RefreshToken: refreshToken,
	}
	if err := h.Employees.Create(ctx, employee); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "The user is registered successfully",
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Email and password are required")
		return
	}

	ctx := c.Request.Context()

	employee, err := h.Employees.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the client.
		if errors.Is(err, apperr.ErrEmployeeNotFound) {
			respondError(c, apperr.ErrInvalidCredentials)
			return
		}
		respondError(c, err)
		return
	}

	if err := utils.VerifyPassword(employee.Password, req.Password); err != nil {
		respondError(c, apperr.ErrInvalidCredentials)
		return
	}

	accessToken, err := utils.GenerateAccessToken(employee.ID, employee.Email, h.JWT.AccessSecret, h.JWT.AccessExpiry)
	if err != nil {
		respondError(c, err)
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(employee.ID, h.JWT.RefreshSecret, h.JWT.RefreshExpiry)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Employees.UpdateRefreshToken(ctx, employee.ID, refreshToken); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successful login",
		"token":   accessToken,
		"user_id": employee.ID,
	})
}

// Logout blacklists the presented access token for its remaining lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := c.GetString(middleware.ContextToken)

	claims, err := utils.ParseAndValidateToken(tokenString, h.JWT.AccessSecret)
	if err != nil {
		respondError(c, apperr.Validation("Invalid token"))
		return
	}

	ttl := h.JWT.AccessExpiry
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl > 0 {
		if err := h.Blacklist.BanToken(c.Request.Context(), tokenString, ttl); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}
