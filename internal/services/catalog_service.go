// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
	"github.com/Neha-Singh-j/E-commerce/internal/utils"
)

// CatalogService manages the product collection. Mutations are guarded
// twice: a coarse seller-role check first, then the ownership check that
// the acting user is the product's author.
type CatalogService struct {
	store store.Store
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=1000"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"min=0"`
	ImageURL    string   `json:"image_url" validate:"required,url"`
	Images      []string `json:"images,omitempty"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,min=10,max=1000"`
	Category    string   `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	ImageURL    string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Images      []string `json:"images,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	MinPrice *float64
	MaxPrice *float64
	AuthorID *uuid.UUID
	InStock  bool
}

func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

func (s *CatalogService) CreateProduct(ctx context.Context, authorID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	author, err := s.store.Users().GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !author.IsSeller() {
		return nil, apperrors.ErrForbidden
	}

	product := &models.Product{
		AuthorID:    authorID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
	}
	if err := s.store.Products().Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	return s.store.Products().GetByID(ctx, productUUID)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, actorID uuid.UUID, productID string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	product, err := s.authorizeMutation(ctx, actorID, productUUID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.Images != nil {
		product.Images = req.Images
	}

	if err := s.store.Products().Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product and every review it references inside
// one transaction, so no orphaned reviews survive a partial failure.
func (s *CatalogService) DeleteProduct(ctx context.Context, actorID uuid.UUID, productID string) error {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	if _, err := s.authorizeMutation(ctx, actorID, productUUID); err != nil {
		return err
	}

	return s.store.Atomic(ctx, func(tx store.Store) error {
		deleted, err := tx.Reviews().DeleteByProduct(ctx, productUUID)
		if err != nil {
			return err
		}
		if err := tx.Products().Delete(ctx, productUUID); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"product_id":      productUUID,
			"reviews_deleted": deleted,
		}).Info("Product deleted with review cascade")
		return nil
	})
}

func (s *CatalogService) SearchProducts(ctx context.Context, params ProductSearchParams) ([]models.Product, int64, error) {
	allowedSortFields := []string{"created_at", "price", "name", "rating"}

	filter := store.ProductFilter{
		Category: params.Category,
		Search:   params.Search,
		MinPrice: params.MinPrice,
		MaxPrice: params.MaxPrice,
		AuthorID: params.AuthorID,
		InStock:  params.InStock,
		Sort:     params.ValidSort(allowedSortFields),
		Order:    params.Order,
		Offset:   params.Offset(),
		Limit:    params.Limit,
	}
	return s.store.Products().Find(ctx, filter)
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]store.CategoryCount, error) {
	return s.store.Products().Categories(ctx)
}

// authorizeMutation loads the product and applies the seller-role guard
// followed by the ownership guard. Both are pure predicate checks over
// already-loaded state.
func (s *CatalogService) authorizeMutation(ctx context.Context, actorID, productID uuid.UUID) (*models.Product, error) {
	actor, err := s.store.Users().GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsSeller() {
		return nil, apperrors.ErrForbidden
	}

	product, err := s.store.Products().GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.AuthorID != actor.ID {
		return nil, apperrors.ErrForbidden
	}
	return product, nil
}
