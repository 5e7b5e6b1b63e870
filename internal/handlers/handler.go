package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"mealtrack/internal/config"
	"mealtrack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *gorm.DB
	rdb      *redis.Client
	accounts *services.AccountService
	meals    *services.MealService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	accounts *services.AccountService,
	meals *services.MealService,
) *Handler {
	return &Handler{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		rdb:      rdb,
		accounts: accounts,
		meals:    meals,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrInvalidDateTime):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// renderError converts a service error into the JSON error body. Known
// taxonomy errors carry their own message; anything else becomes a 500
// with the raw error text in a separate field.
func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(fallback, "error", err, "path", c.Request.URL.Path)
		c.JSON(status, gin.H{"message": fallback, "error": err.Error()})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
