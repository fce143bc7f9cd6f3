package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"menuboard/internal/manager"
	"menuboard/internal/public"
)

// New builds the gin engine serving both views. The manager surface
// lives under /manager, the public listing under /menu.
func New(managerCtrl *manager.Controller, publicCtrl *public.Controller) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	mgr := r.Group("/manager")
	{
		mgr.GET("", managerCtrl.Page)
		mgr.GET("/items", managerCtrl.Items)
		mgr.POST("/items", managerCtrl.Save)
		mgr.POST("/items/:id/delete-request", managerCtrl.RequestDelete)
		mgr.POST("/items/:id/delete", managerCtrl.ConfirmDelete)
		mgr.POST("/items/:id/cancel-delete", managerCtrl.CancelDelete)
		mgr.POST("/items/:id/image", managerCtrl.UploadImage)
		mgr.GET("/export", managerCtrl.Export)
	}

	menu := r.Group("/menu")
	{
		menu.GET("", publicCtrl.Page)
		menu.GET("/items/:id", publicCtrl.ItemDetail)
	}

	return r
}
