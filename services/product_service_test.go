package services

import (
	"context"
	"testing"

	"restaurant-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProductFixture(t *testing.T) (*fakeProductRepo, *fakeCategoryRepo, *ProductService) {
	t.Helper()
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	svc := NewProductService(products, categories, newFakeImageStore())
	return products, categories, svc
}

func TestProductCreateDefaults(t *testing.T) {
	_, _, svc := newProductFixture(t)

	flat, err := svc.Create(context.Background(), ProductWriteRequest{Name: "margherita", Price: 9.5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if flat["units"] != models.DefaultUnits {
		t.Errorf("units = %v, want %q", flat["units"], models.DefaultUnits)
	}
	if flat["is_template"] != false || flat["is_hidden"] != false {
		t.Errorf("flags = %v/%v, want false/false", flat["is_template"], flat["is_hidden"])
	}
	if flat["price"] != 9.5 {
		t.Errorf("price = %v", flat["price"])
	}
}

func TestProductUpdateMaintainsCategoryItemsOrder(t *testing.T) {
	products, categories, svc := newProductFixture(t)
	ctx := context.Background()

	cat := &models.Category{Name: "Pizza"}
	if err := categories.Save(ctx, cat); err != nil {
		t.Fatalf("save category: %v", err)
	}

	flat, err := svc.Create(ctx, ProductWriteRequest{Name: "margherita"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := flat["id"].(string)

	_, err = svc.Update(ctx, id, ProductWriteRequest{
		Name:       "margherita",
		Categories: []string{cat.ID.Hex(), "65b8f0000000000000000000"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	oid, _ := primitive.ObjectIDFromHex(id)
	stored := products.mustGet(oid)
	if len(stored.Categories) != 1 || stored.Categories[0] != cat.ID {
		t.Errorf("categories = %v, unknown ids must be skipped", stored.Categories)
	}

	catStored, err := categories.FindByID(ctx, cat.ID)
	if err != nil {
		t.Fatalf("find category: %v", err)
	}
	if !containsID(catStored.ItemsOrder, oid) {
		t.Error("category items_order was not updated with the new member")
	}

	// A second update must not duplicate the reverse reference.
	if _, err := svc.Update(ctx, id, ProductWriteRequest{
		Name:       "margherita",
		Categories: []string{cat.ID.Hex()},
	}); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	catStored, _ = categories.FindByID(ctx, cat.ID)
	if len(catStored.ItemsOrder) != 1 {
		t.Errorf("items_order = %v, want a single entry", catStored.ItemsOrder)
	}
}

func TestProductListExcludesTemplatesAndFlattens(t *testing.T) {
	products, _, svc := newProductFixture(t)
	ctx := context.Background()

	dish := &models.Product{Name: "margherita", Properties: []models.CustomProperty{
		{Name: "spicy", Value: models.BoolValue(true)},
		{Name: "gone", Value: models.StringValue("x"), IsDeleted: true},
	}}
	template := &models.Product{Name: "base", IsTemplate: true}
	for _, p := range []*models.Product{dish, template} {
		if err := products.Save(ctx, p); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %d entries, templates must be excluded", len(list))
	}
	flat := list[0]
	if v, ok := flat["spicy"].(models.PropertyValue); !ok || v.Interface() != true {
		t.Errorf("flattened property missing: %v", flat["spicy"])
	}
	if _, ok := flat["gone"]; ok {
		t.Error("soft-deleted property leaked into the flattened form")
	}
}

func TestProductDeleteLeavesChildrenDangling(t *testing.T) {
	products, _, svc := newProductFixture(t)
	ctx := context.Background()

	parent := &models.Product{Name: "base"}
	if err := products.Save(ctx, parent); err != nil {
		t.Fatalf("save: %v", err)
	}
	child := &models.Product{Name: "variant", Parent: &parent.ID}
	if err := products.Save(ctx, child); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.Delete(ctx, parent.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	stored := products.mustGet(child.ID)
	if stored == nil || stored.Parent == nil || *stored.Parent != parent.ID {
		t.Error("child must keep its dangling parent reference")
	}
}
