package repository

import (
	"context"

	"restaurant-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepo is the store contract the catalog and the property
// inheritance walk are built on. Save has upsert semantics: it assigns an
// identifier on first save and overwrites the full record thereafter.
type ProductRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// FindByParent returns the direct children of id, i.e. every product
	// whose parent field equals id.
	FindByParent(ctx context.Context, id primitive.ObjectID) ([]*models.Product, error)
	Find(ctx context.Context, filter bson.M) ([]*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	// Delete removes the record outright. Deleting an absent record is not
	// an error; no cascade is performed.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CategoryRepo mirrors ProductRepo for the category tree.
type CategoryRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindAll(ctx context.Context) ([]*models.Category, error)
	Find(ctx context.Context, filter bson.M) ([]*models.Category, error)
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderRepo persists submitted orders.
type OrderRepo interface {
	Insert(ctx context.Context, order *models.Order) error
}
