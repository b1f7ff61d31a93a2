package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/ronak1998bacancy/E-commerce/controllers"
	"github.com/ronak1998bacancy/E-commerce/middleware"
)

func RegisterRoutes(r *gin.Engine, staticDir string) {

	api := r.Group("/api")
	{
		api.GET("/products", controllers.GetProducts)
		api.GET("/products/:id", controllers.GetProductByID)
		api.GET("/products/:id/recommendations", controllers.GetRecommendations)
		api.GET("/categories", controllers.GetCategories)
		api.GET("/status", controllers.GetStatus)

		api.POST("/login", controllers.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/reload", controllers.ReloadCatalog)
		}
	}

	r.Static("/static", staticDir)
	r.StaticFile("/", filepath.Join(staticDir, "index.html"))
}
