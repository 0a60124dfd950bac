package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/app/services"
	"github.com/naveen/management/internal/middleware"
	"github.com/naveen/management/internal/web"
)

// ProductController handles the product API endpoints and pages. Like the
// student forms, the product forms carry the category dropdown.
type ProductController struct {
	productService  *services.ProductService
	categoryService *services.CategoryService
}

// NewProductController creates a new product controller.
func NewProductController(productService *services.ProductService, categoryService *services.CategoryService) *ProductController {
	return &ProductController{productService: productService, categoryService: categoryService}
}

// ListProducts returns all products as a JSON envelope, each joined with
// its category name.
func (ctl *ProductController) ListProducts(c *gin.Context) {
	products, err := ctl.productService.ListProducts(c)
	if err != nil {
		middleware.HandleAPIError(c, "Error fetching products", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse("Products fetched successfully", len(products), products))
}

// ProductsPage renders the product overview table.
func (ctl *ProductController) ProductsPage(c *gin.Context) {
	products, err := ctl.productService.ListProducts(c)
	if err != nil {
		respondListError(c, "Error fetching products", "products", err)
		return
	}
	c.HTML(http.StatusOK, "products_list.tmpl", gin.H{
		"Title":    "Product Management",
		"Active":   "products",
		"Products": products,
	})
}

// AddProductForm renders the empty product form with the category dropdown.
func (ctl *ProductController) AddProductForm(c *gin.Context) {
	categories, err := ctl.categoryService.ListCategoriesByName(c)
	if err != nil {
		respondListError(c, "Error fetching categories", "products", err)
		return
	}
	c.HTML(http.StatusOK, "product_form.tmpl", gin.H{
		"Title":      "Add Product",
		"Active":     "products",
		"Action":     "/add-product",
		"Categories": categories,
	})
}

// EditProductForm renders the product form pre-filled with an existing row.
func (ctl *ProductController) EditProductForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid product ID", "products", "/products", "Back to Products")
		return
	}
	product, err := ctl.productService.GetProductByID(c, id)
	if err != nil {
		respondOperationError(c, "Error fetching product", "products", err,
			web.Link{Href: "/products", Label: "Back to Products", Class: "nav-btn"})
		return
	}
	categories, err := ctl.categoryService.ListCategoriesByName(c)
	if err != nil {
		respondListError(c, "Error fetching categories", "products", err)
		return
	}
	c.HTML(http.StatusOK, "product_form.tmpl", gin.H{
		"Title":      "Edit Product",
		"Active":     "products",
		"Action":     fmt.Sprintf("/edit-product/%d", product.ID),
		"Product":    product,
		"Categories": categories,
	})
}

// CreateProduct adds a new product from a form or JSON body.
func (ctl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error adding product", "products", err,
			web.Link{Href: "/add-product", Label: "Try Again", Class: "nav-btn"})
		return
	}
	product, err := ctl.productService.CreateProduct(c, req)
	if err != nil {
		respondOperationError(c, "Error adding product", "products", err,
			web.Link{Href: "/add-product", Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/products", Label: "Back to Products", Class: "nav-btn"})
		return
	}
	respondCreated(c, "products", "Product added successfully", product.ID,
		fmt.Sprintf("Product added successfully! ID: %d", product.ID),
		web.Link{Href: "/products", Label: "Back to Products", Class: "nav-btn"},
		web.Link{Href: "/add-product", Label: "Add Another Product", Class: "nav-btn"})
}

// UpdateProduct applies edits to an existing product.
func (ctl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid product ID", "products", "/products", "Back to Products")
		return
	}
	var req dto.ProductRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error updating product", "products", err,
			web.Link{Href: fmt.Sprintf("/edit-product/%d", id), Label: "Try Again", Class: "nav-btn"})
		return
	}
	if _, err := ctl.productService.UpdateProduct(c, id, req); err != nil {
		respondOperationError(c, "Error updating product", "products", err,
			web.Link{Href: fmt.Sprintf("/edit-product/%d", id), Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/products", Label: "Back to Products", Class: "nav-btn"})
		return
	}
	respondOK(c, "products", "Product updated successfully", gin.H{"id": id},
		"Product updated successfully!",
		web.Link{Href: "/products", Label: "Back to Products", Class: "nav-btn"},
		web.Link{Href: fmt.Sprintf("/edit-product/%d", id), Label: "Edit Again", Class: "nav-btn"})
}

// DeleteProduct removes a product. Deleting an id that no longer exists
// still reports success.
func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid product ID", "products", "/products", "Back to Products")
		return
	}
	if err := ctl.productService.DeleteProduct(c, id); err != nil {
		respondOperationError(c, "Error deleting product", "products", err,
			web.Link{Href: "/products", Label: "Back to Products", Class: "nav-btn"})
		return
	}
	respondOK(c, "products", "Product deleted successfully", gin.H{"id": id},
		"Product deleted successfully!",
		web.Link{Href: "/products", Label: "Back to Products", Class: "nav-btn"})
}
