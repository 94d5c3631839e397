package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"terminly/config"
	"terminly/handlers"
)

// RegisterAppointmentRoutes sets up the endpoints for the booking engine.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("/check", h.CheckAvailability)
		api.POST("/book", h.Book)
		api.POST("/cancel", h.Cancel)
		api.POST("/free-slots", h.FreeSlots)
		api.GET("/next-free-slot", h.NextFreeSlot)
		api.GET("/next-free-slots", h.NextFreeSlots)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"calendar": config.AppConfig.CalendarID,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, h)
}
