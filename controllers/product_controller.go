package controllers

import (
	"net/http"

	"restaurant-backend/apperrors"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	service services.ProductAPI
	cache   *services.CacheManager
}

func NewProductController(service services.ProductAPI, cache *services.CacheManager) *ProductController {
	return &ProductController{service: service, cache: cache}
}

// List returns all non-template products with flattened custom properties.
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.service.List(c)
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) Create(c *gin.Context) {
	var req services.ProductWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	product, err := pc.service.Create(c, req)
	if err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		apperrors.HandleError(c, err)
		return
	}

	pc.invalidate(c)
	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) Get(c *gin.Context) {
	product, err := pc.service.Get(c, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update overwrites product fields, maintains category items_order back
// references, and handles icon payloads.
func (pc *ProductController) Update(c *gin.Context) {
	var req services.ProductWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	product, err := pc.service.Update(c, c.Param("id"), req)
	if err != nil {
		zap.L().Error("Failed to update product", zap.Error(err), zap.String("id", c.Param("id")))
		apperrors.HandleError(c, err)
		return
	}

	pc.invalidate(c)
	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.service.Delete(c, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	pc.invalidate(c)
	c.Status(http.StatusNoContent)
}

func (pc *ProductController) invalidate(c *gin.Context) {
	if pc.cache != nil {
		pc.cache.Invalidate(c)
	}
}
