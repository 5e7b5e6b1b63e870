package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"mealtrack/internal/models"
	"mealtrack/internal/services"

	"github.com/gin-gonic/gin"
)

const mealCacheTTL = 10 * time.Minute

type CreateMealRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DateTime    string `json:"date_time"`
	InDiet      *bool  `json:"in_diet"`
}

type UpdateMealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DateTime    *string `json:"date_time"`
	InDiet      *bool   `json:"in_diet"`
}

func mealCacheKey(userID uint) string {
	return fmt.Sprintf("meals:%d", userID)
}

func (h *Handler) invalidateMealCache(c *gin.Context, userID uint) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(c.Request.Context(), mealCacheKey(userID))
}

// mealIDParam parses the :meal_id path segment. A non-numeric id is
// reported as not found, same as a meal the caller does not own.
func mealIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("meal_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": services.ErrNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) CreateMeal(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	meal, err := h.meals.Create(userID, services.CreateMealInput{
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		InDiet:      req.InDiet,
	})
	if err != nil {
		h.renderError(c, err, "Failed to create meal")
		return
	}

	h.invalidateMealCache(c, userID)
	c.JSON(http.StatusCreated, meal)
}

// ListMeals serves the owner's meals, with a best-effort redis
// lookaside. Cache failures fall through to the database.
func (h *Handler) ListMeals(c *gin.Context) {
	userID := currentUserID(c)
	ctx := c.Request.Context()

	if h.rdb != nil {
		if val, err := h.rdb.Get(ctx, mealCacheKey(userID)).Result(); err == nil {
			var cached []models.Meal
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	meals, err := h.meals.List(userID)
	if err != nil {
		h.renderError(c, err, "Failed to list meals")
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(meals); err == nil {
			h.rdb.Set(ctx, mealCacheKey(userID), data, mealCacheTTL)
		}
	}

	c.JSON(http.StatusOK, meals)
}

func (h *Handler) GetMeal(c *gin.Context) {
	userID := currentUserID(c)
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}

	meal, err := h.meals.Get(userID, mealID)
	if err != nil {
		h.renderError(c, err, "Failed to fetch meal")
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *Handler) UpdateMeal(c *gin.Context) {
	userID := currentUserID(c)
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}

	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	meal, err := h.meals.Update(userID, mealID, services.UpdateMealInput{
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		InDiet:      req.InDiet,
	})
	if err != nil {
		h.renderError(c, err, "Failed to update meal")
		return
	}

	h.invalidateMealCache(c, userID)
	c.JSON(http.StatusOK, meal)
}

func (h *Handler) DeleteMeal(c *gin.Context) {
	userID := currentUserID(c)
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}

	if err := h.meals.Delete(userID, mealID); err != nil {
		h.renderError(c, err, "Failed to delete meal")
		return
	}

	h.invalidateMealCache(c, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
