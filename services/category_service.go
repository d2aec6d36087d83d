package services

import (
	"context"
	"errors"
	"fmt"

	"restaurant-backend/apperrors"
	"restaurant-backend/images"
	"restaurant-backend/models"
	"restaurant-backend/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryService struct {
	repo       repository.CategoryRepo
	imageStore images.Store
}

func NewCategoryService(repo repository.CategoryRepo, imageStore images.Store) *CategoryService {
	return &CategoryService{repo: repo, imageStore: imageStore}
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repo.FindAll(ctx)
}

// Create builds a mostly-empty category; callers typically only supply the
// parent and fill the rest in through updates.
func (s *CategoryService) Create(ctx context.Context, req CategoryWriteRequest) (*models.Category, error) {
	itemsOrder, err := parseObjectIDList(req.ItemsOrder)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsHidden:    true,
		Order:       req.Order,
		ItemsOrder:  itemsOrder,
	}
	if req.IsHidden != nil {
		category.IsHidden = *req.IsHidden
	}

	if err := s.assignParent(ctx, category, req.Parent); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &apperrors.NotFoundError{Resource: "category", ID: id}
	}
	return category, err
}

// Update overwrites the provided fields. Icons can be cleared with an
// explicit empty string, replaced via a data: URL, or left untouched by
// omitting the field.
func (s *CategoryService) Update(ctx context.Context, id string, req CategoryWriteRequest) (*models.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	itemsOrder, err := parseObjectIDList(req.ItemsOrder)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Order = req.Order
	category.ItemsOrder = itemsOrder
	if req.IsHidden != nil {
		category.IsHidden = *req.IsHidden
	}

	if err := s.assignParent(ctx, category, req.Parent); err != nil {
		return nil, err
	}

	category.IconBig, err = s.applyIcon(ctx, req.IconBig, category.IconBig,
		fmt.Sprintf("categories/%s_icon_big", category.ID.Hex()))
	if err != nil {
		return nil, err
	}
	category.IconSmall, err = s.applyIcon(ctx, req.IconSmall, category.IconSmall,
		fmt.Sprintf("categories/%s_icon_small", category.ID.Hex()))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category. No cascade: children and products referencing
// it keep their dangling references. Deleting an absent category succeeds.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}

// assignParent resolves the requested parent against the store. An empty
// value moves the category to the top level; an unknown id leaves the
// current parent alone.
func (s *CategoryService) assignParent(ctx context.Context, category *models.Category, parent *string) error {
	if parent == nil {
		return nil
	}
	if *parent == "" {
		category.Parent = nil
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
	category.Parent = &found.ID
	return nil
}

func (s *CategoryService) applyIcon(ctx context.Context, raw *string, current, pathStem string) (string, error) {
	return applyIcon(ctx, s.imageStore, raw, current, pathStem)
}

// applyIcon implements the three-way icon update semantics shared by
// categories and products.
func applyIcon(ctx context.Context, store images.Store, raw *string, current, pathStem string) (string, error) {
	if raw == nil {
		return current, nil
	}
	if *raw == "" {
		return "", nil
	}

	img, err := images.ParseDataURL(*raw)
	if err != nil {
		return "", apperrors.NewValidation("bad image payload: %v", err)
	}
	if img == nil {
		// An already-stored path echoed back by the frontend.
		return current, nil
	}
	return store.Save(ctx, pathStem, img.MIME, img.Data)
}
