package services

import (
	"context"

	"restaurant-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeProductRepo is an in-memory stand-in for the Mongo-backed repository.
// It stores deep copies so mutations only become visible through Save, the
// same way the real store behaves.
type fakeProductRepo struct {
	products map[primitive.ObjectID]*models.Product
	saves    int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]*models.Product)}
}

func cloneProduct(p *models.Product) *models.Product {
	cp := *p
	cp.Properties = append([]models.CustomProperty(nil), p.Properties...)
	cp.Categories = append([]primitive.ObjectID(nil), p.Categories...)
	if p.Parent != nil {
		parent := *p.Parent
		cp.Parent = &parent
	}
	return &cp
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) FindByParent(ctx context.Context, id primitive.ObjectID) ([]*models.Product, error) {
	var children []*models.Product
	for _, p := range r.products {
		if p.Parent != nil && *p.Parent == id {
			children = append(children, cloneProduct(p))
		}
	}
	return children, nil
}

func (r *fakeProductRepo) Find(ctx context.Context, filter bson.M) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range r.products {
		if matchesProductFilter(p, filter) {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func matchesProductFilter(p *models.Product, filter bson.M) bool {
	if want, ok := filter["is_template"]; ok && p.IsTemplate != want.(bool) {
		return false
	}
	if want, ok := filter["is_hidden"]; ok && p.IsHidden != want.(bool) {
		return false
	}
	if _, ok := filter["categories"]; ok && len(p.Categories) == 0 {
		// The only categories filter used is $ne empty list.
		return false
	}
	return true
}

func (r *fakeProductRepo) Save(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID] = cloneProduct(product)
	r.saves++
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.products, id)
	return nil
}

// mustGet reads a product's persisted state, bypassing any in-memory copy
// the caller still holds.
func (r *fakeProductRepo) mustGet(id primitive.ObjectID) *models.Product {
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	return cloneProduct(p)
}

// fakeCategoryRepo mirrors fakeProductRepo for categories.
type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[primitive.ObjectID]*models.Category)}
}

func cloneCategory(c *models.Category) *models.Category {
	cp := *c
	cp.ItemsOrder = append([]primitive.ObjectID(nil), c.ItemsOrder...)
	if c.Parent != nil {
		parent := *c.Parent
		cp.Parent = &parent
	}
	return &cp
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return cloneCategory(c), nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*models.Category, error) {
	return r.Find(ctx, bson.M{})
}

func (r *fakeCategoryRepo) Find(ctx context.Context, filter bson.M) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range r.categories {
		if want, ok := filter["is_hidden"]; ok && c.IsHidden != want.(bool) {
			continue
		}
		out = append(out, cloneCategory(c))
	}
	return out, nil
}

func (r *fakeCategoryRepo) Save(ctx context.Context, category *models.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	r.categories[category.ID] = cloneCategory(category)
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.categories, id)
	return nil
}

// fakeOrderRepo records inserted orders.
type fakeOrderRepo struct {
	orders []*models.Order
}

func (r *fakeOrderRepo) Insert(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders = append(r.orders, order)
	return nil
}
