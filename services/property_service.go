package services

import (
	"context"
	"strings"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
	"restaurant-backend/repository"
)

// AddPropertyInput carries the full definition of a custom property.
type AddPropertyInput struct {
	Name         string               `json:"name" validate:"required"`
	Label        string               `json:"label"`
	DefaultValue models.PropertyValue `json:"default_value"`
	Value        models.PropertyValue `json:"value"`
	Options      []string             `json:"options"`
	Order        int                  `json:"order"`
	IsDeleted    bool                 `json:"is_deleted"`
}

// PropertyPatch updates only the fields that are set. Nil means "leave as is".
type PropertyPatch struct {
	Name         *string               `json:"name"`
	Label        *string               `json:"label"`
	DefaultValue *models.PropertyValue `json:"default_value"`
	Value        *models.PropertyValue `json:"value"`
	Options      *[]string             `json:"options"`
	Order        *int                  `json:"order"`
	IsDeleted    *bool                 `json:"is_deleted"`
}

// PropertyService implements the property inheritance walk over the product
// tree. Add, edit and full delete propagate to every descendant, each of
// which receives or mutates its own independent copy of the property.
//
// Every step is its own read-modify-persist cycle; no transaction spans the
// walk. A failure partway through leaves some descendants updated and
// others not.
type PropertyService struct {
	products repository.ProductRepo
}

func NewPropertyService(products repository.ProductRepo) *PropertyService {
	return &PropertyService{products: products}
}

// AddProperty attaches a custom property to the product and all its
// descendants. An existing property with the same name is recreated.
func (s *PropertyService) AddProperty(ctx context.Context, product *models.Product, in AddPropertyInput) error {
	if in.Label == "" {
		in.Label = capitalize(in.Name)
	}
	if in.Options == nil {
		in.Options = []string{}
	}

	// Recreate: drop any same-named entry on this node only.
	removeProperty(product, in.Name)

	product.Properties = append(product.Properties, models.CustomProperty{
		Name:         in.Name,
		Label:        in.Label,
		DefaultValue: in.DefaultValue,
		Value:        in.Value,
		Options:      in.Options,
		Order:        in.Order,
		IsDeleted:    in.IsDeleted,
	})

	if err := s.products.Save(ctx, product); err != nil {
		return err
	}

	descendants, err := s.products.FindByParent(ctx, product.ID)
	if err != nil {
		return err
	}
	for _, p := range descendants {
		if err := s.AddProperty(ctx, p, in); err != nil {
			return err
		}
	}
	return nil
}

// EditProperty overwrites the patched fields on every entry named name, on
// the product and all its descendants. If the product itself lacks the
// property the call fails with PropertyNotFoundError before any recursion
// starts. A descendant lacking the property also fails loudly, aborting the
// rest of the walk; nodes already visited keep their update.
func (s *PropertyService) EditProperty(ctx context.Context, product *models.Product, name string, patch PropertyPatch) error {
	found := false
	for i := range product.Properties {
		if product.Properties[i].Name != name {
			continue
		}
		found = true
		applyPatch(&product.Properties[i], patch)
		if err := s.products.Save(ctx, product); err != nil {
			return err
		}
	}

	if !found {
		return &apperrors.PropertyNotFoundError{Name: name, ProductID: product.ID.Hex()}
	}

	descendants, err := s.products.FindByParent(ctx, product.ID)
	if err != nil {
		return err
	}
	for _, p := range descendants {
		if err := s.EditProperty(ctx, p, name, patch); err != nil {
			return err
		}
	}
	return nil
}

// DeleteProperty removes the named property. Non-recursive calls only mark
// the entry deleted on this product. Recursive calls remove the entry
// outright here and on every descendant. A missing property is a silent
// no-op either way.
func (s *PropertyService) DeleteProperty(ctx context.Context, product *models.Product, name string, recursive bool) error {
	if !recursive {
		for i := range product.Properties {
			if product.Properties[i].Name == name {
				product.Properties[i].IsDeleted = true
				return s.products.Save(ctx, product)
			}
		}
		return nil
	}

	if removeProperty(product, name) {
		if err := s.products.Save(ctx, product); err != nil {
			return err
		}
	}

	// Only saved products can have descendants.
	if product.ID.IsZero() {
		return nil
	}
	descendants, err := s.products.FindByParent(ctx, product.ID)
	if err != nil {
		return err
	}
	for _, p := range descendants {
		if err := s.DeleteProperty(ctx, p, name, true); err != nil {
			return err
		}
	}
	return nil
}

// SetProperty overwrites the value of an already-added property on this
// product only. It fails if the property was never added.
func (s *PropertyService) SetProperty(ctx context.Context, product *models.Product, name string, value models.PropertyValue) error {
	for i := range product.Properties {
		if product.Properties[i].Name == name {
			product.Properties[i].Value = value
			return s.products.Save(ctx, product)
		}
	}
	return &apperrors.PropertyNotFoundError{Name: name, ProductID: product.ID.Hex()}
}

// GetProperty returns the value of the first entry named name on this
// product. Soft-deleted entries are still found; only the client-facing
// flattening filters them.
func (s *PropertyService) GetProperty(product *models.Product, name string) (models.PropertyValue, bool) {
	for i := range product.Properties {
		if product.Properties[i].Name == name {
			return product.Properties[i].Value, true
		}
	}
	return models.PropertyValue{}, false
}

// GetProperties returns a name→value map of all entries, soft-deleted ones
// included. Callers that must hide soft deletes filter themselves.
func (s *PropertyService) GetProperties(product *models.Product) map[string]models.PropertyValue {
	props := make(map[string]models.PropertyValue, len(product.Properties))
	for i := range product.Properties {
		props[product.Properties[i].Name] = product.Properties[i].Value
	}
	return props
}

// removeProperty drops the first entry named name in place. Reports whether
// an entry was removed.
func removeProperty(product *models.Product, name string) bool {
	for i := range product.Properties {
		if product.Properties[i].Name == name {
			product.Properties = append(product.Properties[:i], product.Properties[i+1:]...)
			return true
		}
	}
	return false
}

func applyPatch(prop *models.CustomProperty, patch PropertyPatch) {
	if patch.Name != nil {
		prop.Name = *patch.Name
	}
	if patch.Label != nil {
		prop.Label = *patch.Label
	}
	if patch.DefaultValue != nil {
		prop.DefaultValue = *patch.DefaultValue
	}
	if patch.Value != nil {
		prop.Value = *patch.Value
	}
	if patch.Options != nil {
		prop.Options = *patch.Options
	}
	if patch.Order != nil {
		prop.Order = *patch.Order
	}
	if patch.IsDeleted != nil {
		prop.IsDeleted = *patch.IsDeleted
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
