package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/naveen/management/internal/app/models"
	"github.com/naveen/management/internal/pkg/dberrors"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock,
	       p.category_id, c.name AS category_name, p.created_at, p.updated_at
	FROM product p
	LEFT JOIN category c ON p.category_id = c.id
`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.CategoryID,
		&product.CategoryName,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List retrieves all products joined with their category name, newest-first.
func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, productSelect+" ORDER BY p.id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// GetByID retrieves a product with its category name. Returns (nil, nil)
// when no row matches.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, productSelect+" WHERE p.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}

	return product, nil
}

// Create inserts a new product and fills in its assigned ID.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO product (name, description, price, stock, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID).Scan(&product.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrCategoryReference
		}
		return err
	}

	return nil
}

// Update replaces a product's editable fields.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE product
		SET name = $1, description = $2, price = $3, stock = $4,
		    category_id = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrCategoryReference
		}
		return fmt.Errorf("error updating product: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID. Deleting a missing ID is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM product WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	return nil
}
