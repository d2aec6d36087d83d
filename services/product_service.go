package services

import (
	"context"
	"errors"
	"fmt"

	"restaurant-backend/apperrors"
	"restaurant-backend/images"
	"restaurant-backend/models"
	"restaurant-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductService struct {
	repo       repository.ProductRepo
	categories repository.CategoryRepo
	imageStore images.Store
}

func NewProductService(repo repository.ProductRepo, categories repository.CategoryRepo, imageStore images.Store) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		imageStore: imageStore,
	}
}

// List returns all non-template products with their custom properties
// flattened into the payload.
func (s *ProductService) List(ctx context.Context) ([]map[string]interface{}, error) {
	products, err := s.repo.Find(ctx, bson.M{"is_template": false})
	if err != nil {
		return nil, err
	}

	flattened := make([]map[string]interface{}, 0, len(products))
	for _, p := range products {
		flattened = append(flattened, FlattenProduct(p))
	}
	return flattened, nil
}

// Create builds a mostly-empty product; remaining fields arrive through
// subsequent updates.
func (s *ProductService) Create(ctx context.Context, req ProductWriteRequest) (map[string]interface{}, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Units:       req.Units,
		Categories:  []primitive.ObjectID{},
		Properties:  []models.CustomProperty{},
	}
	if product.Units == "" {
		product.Units = models.DefaultUnits
	}
	if req.IsHidden != nil {
		product.IsHidden = *req.IsHidden
	}
	if req.IsTemplate != nil {
		product.IsTemplate = *req.IsTemplate
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return FlattenProduct(product), nil
}

func (s *ProductService) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	product, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return FlattenProduct(product), nil
}

// GetRecord fetches the raw product record, without flattening.
func (s *ProductService) GetRecord(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.NotFoundError{Resource: "product", ID: id}
	}
	return product, err
}

// Update overwrites the provided fields and maintains the reverse
// items_order reference on every category the product newly joins.
// Unknown category ids are skipped.
func (s *ProductService) Update(ctx context.Context, id string, req ProductWriteRequest) (map[string]interface{}, error) {
	product, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.Units != "" {
		product.Units = req.Units
	}
	if req.IsHidden != nil {
		product.IsHidden = *req.IsHidden
	}
	if req.IsTemplate != nil {
		product.IsTemplate = *req.IsTemplate
	}

	if req.Categories != nil {
		categories, err := s.resolveCategories(ctx, product, req.Categories)
		if err != nil {
			return nil, err
		}
		product.Categories = categories
	}

	if err := s.assignParent(ctx, product, req.Parent); err != nil {
		return nil, err
	}

	product.IconBig, err = applyIcon(ctx, s.imageStore, req.IconBig, product.IconBig,
		fmt.Sprintf("products/%s_icon_big", product.ID.Hex()))
	if err != nil {
		return nil, err
	}
	product.IconSmall, err = applyIcon(ctx, s.imageStore, req.IconSmall, product.IconSmall,
		fmt.Sprintf("products/%s_icon_small", product.ID.Hex()))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return FlattenProduct(product), nil
}

// Delete removes the product. Children referencing it become dangling; no
// cascade, no existence check.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}

func (s *ProductService) resolveCategories(ctx context.Context, product *models.Product, ids []string) ([]primitive.ObjectID, error) {
	oids, err := parseObjectIDList(ids)
	if err != nil {
		return nil, err
	}

	resolved := make([]primitive.ObjectID, 0, len(oids))
	for _, oid := range oids {
		cat, err := s.categories.FindByID(ctx, oid)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, cat.ID)

		if !containsID(cat.ItemsOrder, product.ID) {
			cat.ItemsOrder = append(cat.ItemsOrder, product.ID)
			if err := s.categories.Save(ctx, cat); err != nil {
				return nil, err
			}
		}
	}
	return resolved, nil
}

func (s *ProductService) assignParent(ctx context.Context, product *models.Product, parent *string) error {
	if parent == nil {
		return nil
	}
	if *parent == "" {
		product.Parent = nil
		return nil
	}

	oid, err := parseObjectID(*parent)
	if err != nil {
		return err
	}
	found, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return err
	}
	product.Parent = &found.ID
	return nil
}

// FlattenProduct merges the values of non-deleted custom properties into
// the product's wire form, keyed by property name. Property names can
// shadow base fields.
func FlattenProduct(p *models.Product) map[string]interface{} {
	out := map[string]interface{}{
		"id":          p.ID.Hex(),
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"units":       p.Units,
		"icon_small":  p.IconSmall,
		"icon_big":    p.IconBig,
		"is_template": p.IsTemplate,
		"is_hidden":   p.IsHidden,
		"categories":  hexList(p.Categories),
		"parent":      hexOrNil(p.Parent),
		"properties":  p.Properties,
	}
	for _, prop := range p.Properties {
		if prop.IsDeleted {
			continue
		}
		out[prop.Name] = prop.Value
	}
	return out
}
