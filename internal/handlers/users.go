package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	if _, err := h.accounts.Register(req.Username, req.Password); err != nil {
		h.renderError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	user, err := h.accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		h.renderError(c, err, "Failed to log in")
		return
	}

	session := sessions.Default(c)
	session.Set(userIDKey, user.ID)
	if err := session.Save(); err != nil {
		h.renderError(c, err, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully"})
}

func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		h.renderError(c, err, "Failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	userID := currentUserID(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.accounts.Update(userID, req.Username, req.Password); err != nil {
		h.renderError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// DeleteUser removes the account and all its meals, then drops the
// session that pointed at it.
func (h *Handler) DeleteUser(c *gin.Context) {
	userID := currentUserID(c)

	if err := h.accounts.Delete(userID); err != nil {
		h.renderError(c, err, "Failed to delete user")
		return
	}

	h.invalidateMealCache(c, userID)

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		h.renderError(c, err, "Failed to clear session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
