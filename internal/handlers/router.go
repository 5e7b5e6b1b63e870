package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.RequestLogger())

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("mealtrack_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.POST("/creater_user", h.CreateUser)
	r.POST("/login", h.Login)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.PUT("/update", h.UpdateUser)
		authorized.GET("/logout", h.Logout)
		authorized.DELETE("/delete", h.DeleteUser)

		authorized.POST("/meals", h.CreateMeal)
		authorized.GET("/meals", h.ListMeals)
		authorized.GET("/meals/:meal_id", h.GetMeal)
		authorized.PUT("/meals/:meal_id", h.UpdateMeal)
		authorized.DELETE("/meals/:meal_id", h.DeleteMeal)
	}

	return r
}
