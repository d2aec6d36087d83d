package services

import (
	"context"

	"restaurant-backend/models"
)

// CategoryWriteRequest is the payload for category create and update.
// Pointer fields distinguish "omitted" from zero values: an omitted icon is
// left untouched, an empty icon clears the stored image, a data: URL
// replaces it.
type CategoryWriteRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsHidden    *bool    `json:"is_hidden"`
	Order       int      `json:"order"`
	ItemsOrder  []string `json:"items_order"`
	Parent      *string  `json:"parent"`
	IconSmall   *string  `json:"icon_small"`
	IconBig     *string  `json:"icon_big"`
}

// ProductWriteRequest is the payload for product create and update.
type ProductWriteRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Units       string   `json:"units"`
	IsTemplate  *bool    `json:"is_template"`
	IsHidden    *bool    `json:"is_hidden"`
	Categories  []string `json:"categories"`
	Parent      *string  `json:"parent"`
	IconSmall   *string  `json:"icon_small"`
	IconBig     *string  `json:"icon_big"`
}

// CategoryAPI is the surface the admin category controller depends on.
type CategoryAPI interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, req CategoryWriteRequest) (*models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, id string, req CategoryWriteRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductAPI is the surface the admin product controller depends on.
type ProductAPI interface {
	List(ctx context.Context) ([]map[string]interface{}, error)
	Create(ctx context.Context, req ProductWriteRequest) (map[string]interface{}, error)
	Get(ctx context.Context, id string) (map[string]interface{}, error)
	GetRecord(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, req ProductWriteRequest) (map[string]interface{}, error)
	Delete(ctx context.Context, id string) error
}

// PropertyAPI is the surface the property controller depends on.
type PropertyAPI interface {
	AddProperty(ctx context.Context, product *models.Product, in AddPropertyInput) error
	EditProperty(ctx context.Context, product *models.Product, name string, patch PropertyPatch) error
	DeleteProperty(ctx context.Context, product *models.Product, name string, recursive bool) error
	GetProperties(product *models.Product) map[string]models.PropertyValue
}

// CatalogAPI is the surface the mobile controller depends on.
type CatalogAPI interface {
	Version(ctx context.Context) int64
	Snapshot(ctx context.Context) (map[string]interface{}, error)
}

// OrderAPI is the surface the mobile controller depends on.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, req OrderSubmission) (*models.Order, error)
}
