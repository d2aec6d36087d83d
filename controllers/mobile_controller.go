package controllers

import (
	"net/http"

	"restaurant-backend/apperrors"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MobileController serves the client app: catalog snapshot sync and order
// intake.
type MobileController struct {
	catalog services.CatalogAPI
	orders  services.OrderAPI
}

func NewMobileController(catalog services.CatalogAPI, orders services.OrderAPI) *MobileController {
	return &MobileController{catalog: catalog, orders: orders}
}

// DBVersion returns the current snapshot version. Clients compare it with
// the version of their local copy and refetch the full DB on mismatch.
func (mc *MobileController) DBVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": mc.catalog.Version(c)})
}

// DB returns the full catalog in the flattened client format.
func (mc *MobileController) DB(c *gin.Context) {
	snapshot, err := mc.catalog.Snapshot(c)
	if err != nil {
		zap.L().Error("Failed to build catalog snapshot", zap.Error(err))
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// PostOrder freezes the submitted cart into an order and notifies staff.
func (mc *MobileController) PostOrder(c *gin.Context) {
	var req services.OrderSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	order, err := mc.orders.PlaceOrder(c, req)
	if err != nil {
		zap.L().Error("Failed to place order", zap.Error(err))
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
