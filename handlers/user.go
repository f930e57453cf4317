package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userService "turfbook/services/user"
)

// RegisterUserHandler creates a new customer account and signs it in.
func RegisterUserHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
			FullName string `json:"fullName" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.RegisterUser(req.Username, req.Password, req.FullName)
		if err != nil {
			if strings.Contains(err.Error(), "already exists") {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to register user", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateUserHandler verifies credentials and returns a fresh token.
func AuthenticateUserHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.AuthenticateUser(req.Username, req.Password)
		if err != nil {
			logger.Warn("Failed login attempt", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetUserByIDHandler returns the authenticated user's own account.
func GetUserByIDHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		usr, err := svc.GetUserByID(userID.(string))
		if err != nil || usr == nil {
			logger.Error("Failed to fetch user", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, usr)
	}
}

// RevokeUserAuthTokenHandler signs the authenticated user out.
func RevokeUserAuthTokenHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.RevokeAuthToken(userID.(string)); err != nil {
			logger.Error("Failed to revoke token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	}
}
