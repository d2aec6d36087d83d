package controllers

import (
	"net/http"

	"restaurant-backend/apperrors"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryController struct {
	service services.CategoryAPI
	cache   *services.CacheManager
}

func NewCategoryController(service services.CategoryAPI, cache *services.CacheManager) *CategoryController {
	return &CategoryController{service: service, cache: cache}
}

// List returns all categories, hidden ones included.
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.service.List(c)
	if err != nil {
		zap.L().Error("Failed to list categories", zap.Error(err))
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create makes a new, mostly empty category.
func (cc *CategoryController) Create(c *gin.Context) {
	var req services.CategoryWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	category, err := cc.service.Create(c, req)
	if err != nil {
		zap.L().Error("Failed to create category", zap.Error(err))
		apperrors.HandleError(c, err)
		return
	}

	cc.invalidate(c)
	c.JSON(http.StatusCreated, category)
}

func (cc *CategoryController) Get(c *gin.Context) {
	category, err := cc.service.Get(c, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Update overwrites category fields. Icons may come in as data: URLs.
func (cc *CategoryController) Update(c *gin.Context) {
	var req services.CategoryWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	category, err := cc.service.Update(c, c.Param("id"), req)
	if err != nil {
		zap.L().Error("Failed to update category", zap.Error(err), zap.String("id", c.Param("id")))
		apperrors.HandleError(c, err)
		return
	}

	cc.invalidate(c)
	c.JSON(http.StatusCreated, category)
}

// Delete removes the category and nothing else.
func (cc *CategoryController) Delete(c *gin.Context) {
	if err := cc.service.Delete(c, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	cc.invalidate(c)
	c.Status(http.StatusNoContent)
}

func (cc *CategoryController) invalidate(c *gin.Context) {
	if cc.cache != nil {
		cc.cache.Invalidate(c)
	}
}
