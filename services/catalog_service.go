package services

import (
	"context"

	"restaurant-backend/models"
	"restaurant-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogService prepares the full-catalog snapshot the mobile app syncs.
// Clients work offline against the snapshot and refetch when the version
// moves.
type CatalogService struct {
	products   repository.ProductRepo
	categories repository.CategoryRepo
	cache      *CacheManager
}

func NewCatalogService(products repository.ProductRepo, categories repository.CategoryRepo, cache *CacheManager) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		cache:      cache,
	}
}

func (s *CatalogService) Version(ctx context.Context) int64 {
	return s.cache.Version(ctx)
}

// Snapshot returns the flattened catalog: visible categories plus visible,
// non-template products that belong to at least one category. Roughly
// 300 KB per 500 products before gzip.
func (s *CatalogService) Snapshot(ctx context.Context) (map[string]interface{}, error) {
	version := s.cache.Version(ctx)
	if snapshot, ok := s.cache.GetSnapshot(ctx, version); ok {
		return snapshot, nil
	}

	categories, err := s.categories.Find(ctx, bson.M{"is_hidden": false})
	if err != nil {
		return nil, err
	}
	products, err := s.products.Find(ctx, bson.M{
		"is_template": false,
		"is_hidden":   false,
		"categories":  bson.M{"$ne": bson.A{}},
	})
	if err != nil {
		return nil, err
	}

	categoryMap := make(map[string]interface{}, len(categories))
	for _, c := range categories {
		categoryMap[c.ID.Hex()] = adaptCategory(c)
	}
	dishMap := make(map[string]interface{}, len(products))
	for _, p := range products {
		dishMap[p.ID.Hex()] = adaptDish(p)
	}

	snapshot := map[string]interface{}{
		"collections": []string{"categories", "dishes"},
		"categories":  categoryMap,
		"dishes":      dishMap,
	}

	s.cache.SetSnapshotAsync(version, snapshot)
	return snapshot, nil
}

func adaptCategory(c *models.Category) map[string]interface{} {
	return map[string]interface{}{
		"id":          c.ID.Hex(),
		"parent":      hexOrNil(c.Parent),
		"label":       c.Name,
		"description": c.Description,
		"icon_small":  c.IconSmall,
		"icon_big":    c.IconBig,
		"order":       c.Order,
		"items_order": hexList(c.ItemsOrder),
	}
}

func adaptDish(p *models.Product) map[string]interface{} {
	dish := map[string]interface{}{
		"id":          p.ID.Hex(),
		"categories":  hexList(p.Categories),
		"label":       p.Name,
		"description": p.Description,
		"price":       p.Price,
		"units":       p.Units,
		"icon_small":  p.IconSmall,
		"icon_big":    p.IconBig,
		"parent":      hexOrNil(p.Parent),
	}
	for _, prop := range p.Properties {
		if prop.IsDeleted {
			continue
		}
		dish[prop.Name] = prop.Value
	}
	return dish
}
