package controllers

import (
	"net/http"

	"restaurant-backend/apperrors"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyController exposes the custom property operations as a nested
// resource under products. Mutations here propagate down the product tree.
type PropertyController struct {
	products   services.ProductAPI
	properties services.PropertyAPI
	cache      *services.CacheManager
}

func NewPropertyController(products services.ProductAPI, properties services.PropertyAPI, cache *services.CacheManager) *PropertyController {
	return &PropertyController{
		products:   products,
		properties: properties,
		cache:      cache,
	}
}

// List returns the product's properties as a name→value map, soft-deleted
// entries included.
func (pc *PropertyController) List(c *gin.Context) {
	product, err := pc.products.GetRecord(c, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pc.properties.GetProperties(product))
}

// Add attaches a property to the product and every descendant. An existing
// property with the same name is recreated.
func (pc *PropertyController) Add(c *gin.Context) {
	var req services.AddPropertyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	product, err := pc.products.GetRecord(c, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := pc.properties.AddProperty(c, product, req); err != nil {
		zap.L().Error("Failed to add property", zap.Error(err),
			zap.String("product", c.Param("id")), zap.String("property", req.Name))
		apperrors.HandleError(c, err)
		return
	}

	pc.invalidate(c)
	c.JSON(http.StatusCreated, product.Properties)
}

// Edit patches the named property here and on every descendant. A node
// missing the property fails the whole walk; already-visited nodes keep
// their update.
func (pc *PropertyController) Edit(c *gin.Context) {
	var patch services.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	product, err := pc.products.GetRecord(c, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := pc.properties.EditProperty(c, product, c.Param("name"), patch); err != nil {
		zap.L().Warn("Failed to edit property", zap.Error(err),
			zap.String("product", c.Param("id")), zap.String("property", c.Param("name")))
		apperrors.HandleError(c, err)
		return
	}

	pc.invalidate(c)
	c.JSON(http.StatusOK, product.Properties)
}

// Delete marks the property deleted, or removes it from the whole subtree
// when ?recursive=true. Deleting an absent property succeeds.
func (pc *PropertyController) Delete(c *gin.Context) {
	recursive := c.Query("recursive") == "true"

	product, err := pc.products.GetRecord(c, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := pc.properties.DeleteProperty(c, product, c.Param("name"), recursive); err != nil {
		zap.L().Error("Failed to delete property", zap.Error(err),
			zap.String("product", c.Param("id")), zap.String("property", c.Param("name")))
		apperrors.HandleError(c, err)
		return
	}

	pc.invalidate(c)
	c.Status(http.StatusNoContent)
}

func (pc *PropertyController) invalidate(c *gin.Context) {
	if pc.cache != nil {
		pc.cache.Invalidate(c)
	}
}
