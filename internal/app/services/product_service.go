package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/naveen/management/internal/app/models"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/app/repositories"
	"github.com/naveen/management/internal/pkg/apperrors"
	"github.com/naveen/management/internal/pkg/helpers"
)

// ProductStore is the store access the product service needs.
type ProductStore interface {
	List(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
}

// ProductService handles product-related operations
type ProductService struct {
	products ProductStore
}

// NewProductService creates a new product service instance
func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

// ListProducts retrieves all products with their category names,
// newest-first.
func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return products, nil
}

// GetProductByID retrieves a product by ID.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("Product not found")
	}
	return product, nil
}

// buildProduct validates a product request and converts it into a model.
// Price must be a non-negative number; stock defaults to 0.
func buildProduct(req dto.ProductRequest, missingMsg string) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Price.String()) == "" {
		return nil, apperrors.NewValidationError(missingMsg)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price.String()), 64)
	if err != nil || price < 0 {
		return nil, apperrors.NewValidationError("Price must be a valid positive number")
	}

	stock := 0
	if v := strings.TrimSpace(req.Stock.String()); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil {
			return nil, apperrors.NewValidationError("Stock must be a valid number")
		}
	}

	categoryID, err := parseOptionalID(req.CategoryID.String())
	if err != nil {
		return nil, apperrors.NewValidationError("Category must be a valid category id")
	}

	return &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: helpers.NullableString(req.Description),
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	}, nil
}

// CreateProduct validates and creates a new product.
func (s *ProductService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*models.Product, error) {
	product, err := buildProduct(req, "Missing required fields: Name and price are required")
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrCategoryReference) {
			return nil, apperrors.NewValidationError("Selected category does not exist")
		}
		return nil, apperrors.NewStoreError(err)
	}

	return product, nil
}

// UpdateProduct validates and replaces a product's editable fields.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req dto.ProductRequest) (*models.Product, error) {
	product, err := buildProduct(req, "Name and price are required")
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.products.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			return nil, apperrors.NewNotFoundError("Product not found")
		case errors.Is(err, repositories.ErrCategoryReference):
			return nil, apperrors.NewValidationError("Selected category does not exist")
		default:
			return nil, apperrors.NewStoreError(err)
		}
	}

	return product, nil
}

// DeleteProduct removes a product. Deleting a missing ID reports success.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}
