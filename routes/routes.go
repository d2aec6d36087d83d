package routes

import (
	"restaurant-backend/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes wires the catalog management surface.
func RegisterAdminRoutes(r *gin.Engine, categories *controllers.CategoryController, products *controllers.ProductController, properties *controllers.PropertyController) {
	admin := r.Group("/db")
	{
		admin.GET("/categories", categories.List)
		admin.POST("/categories", categories.Create)
		admin.GET("/categories/:id", categories.Get)
		admin.POST("/categories/:id", categories.Update)
		admin.DELETE("/categories/:id", categories.Delete)

		admin.GET("/products", products.List)
		admin.POST("/products", products.Create)
		admin.GET("/products/:id", products.Get)
		admin.POST("/products/:id", products.Update)
		admin.DELETE("/products/:id", products.Delete)

		admin.GET("/products/:id/properties", properties.List)
		admin.POST("/products/:id/properties", properties.Add)
		admin.PUT("/products/:id/properties/:name", properties.Edit)
		admin.DELETE("/products/:id/properties/:name", properties.Delete)
	}
}

// RegisterMobileRoutes wires the client-facing surface. API key check and
// rate limiting guard only these routes.
func RegisterMobileRoutes(r *gin.Engine, mobile *controllers.MobileController, mws ...gin.HandlerFunc) {
	m := r.Group("", mws...)
	{
		m.GET("/db", mobile.DB)
		m.GET("/db_version", mobile.DBVersion)
		m.POST("/order", mobile.PostOrder)
	}
}
