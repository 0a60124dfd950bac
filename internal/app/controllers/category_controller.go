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

// CategoryController handles the category API endpoints and pages.
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new category controller.
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ListCategories returns all categories as a JSON envelope, ordered by name.
func (ctl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctl.categoryService.ListCategoriesByName(c)
	if err != nil {
		middleware.HandleAPIError(c, "Error fetching categories", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse("Categories fetched successfully", len(categories), categories))
}

// CategoriesPage renders the category overview table.
func (ctl *CategoryController) CategoriesPage(c *gin.Context) {
	categories, err := ctl.categoryService.ListCategoriesNewestFirst(c)
	if err != nil {
		respondListError(c, "Error fetching categories", "categories", err)
		return
	}
	c.HTML(http.StatusOK, "categories_list.tmpl", gin.H{
		"Title":      "Category Management",
		"Active":     "categories",
		"Categories": categories,
	})
}

// AddCategoryForm renders the empty category form.
func (ctl *CategoryController) AddCategoryForm(c *gin.Context) {
	c.HTML(http.StatusOK, "category_form.tmpl", gin.H{
		"Title":  "Add Category",
		"Active": "categories",
		"Action": "/add-category",
	})
}

// EditCategoryForm renders the category form pre-filled with an existing row.
func (ctl *CategoryController) EditCategoryForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid category ID", "categories", "/categories", "Back to Categories")
		return
	}
	category, err := ctl.categoryService.GetCategoryByID(c, id)
	if err != nil {
		respondOperationError(c, "Error fetching category", "categories", err,
			web.Link{Href: "/categories", Label: "Back to Categories", Class: "nav-btn"})
		return
	}
	c.HTML(http.StatusOK, "category_form.tmpl", gin.H{
		"Title":    "Edit Category",
		"Active":   "categories",
		"Action":   fmt.Sprintf("/edit-category/%d", category.ID),
		"Category": category,
	})
}

// CreateCategory adds a new category from a form or JSON body.
func (ctl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error adding category", "categories", err,
			web.Link{Href: "/add-category", Label: "Try Again", Class: "nav-btn"})
		return
	}
	category, err := ctl.categoryService.CreateCategory(c, req)
	if err != nil {
		respondOperationError(c, "Error adding category", "categories", err,
			web.Link{Href: "/add-category", Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/categories", Label: "Back to Categories", Class: "nav-btn"})
		return
	}
	respondCreated(c, "categories", "Category added successfully", category.ID,
		fmt.Sprintf("Category added successfully! ID: %d", category.ID),
		web.Link{Href: "/categories", Label: "Back to Categories", Class: "nav-btn"},
		web.Link{Href: "/add-category", Label: "Add Another Category", Class: "nav-btn"})
}

// UpdateCategory applies edits to an existing category.
func (ctl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid category ID", "categories", "/categories", "Back to Categories")
		return
	}
	var req dto.CategoryRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error updating category", "categories", err,
			web.Link{Href: fmt.Sprintf("/edit-category/%d", id), Label: "Try Again", Class: "nav-btn"})
		return
	}
	if _, err := ctl.categoryService.UpdateCategory(c, id, req); err != nil {
		respondOperationError(c, "Error updating category", "categories", err,
			web.Link{Href: fmt.Sprintf("/edit-category/%d", id), Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/categories", Label: "Back to Categories", Class: "nav-btn"})
		return
	}
	respondOK(c, "categories", "Category updated successfully", gin.H{"id": id},
		"Category updated successfully!",
		web.Link{Href: "/categories", Label: "Back to Categories", Class: "nav-btn"},
		web.Link{Href: fmt.Sprintf("/edit-category/%d", id), Label: "Edit Again", Class: "nav-btn"})
}

// DeleteCategory removes a category unless products or students still
// reference it.
func (ctl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid category ID", "categories", "/categories", "Back to Categories")
		return
	}
	if err := ctl.categoryService.DeleteCategory(c, id); err != nil {
		respondOperationError(c, "Error deleting category", "categories", err,
			web.Link{Href: "/categories", Label: "Back to Categories", Class: "nav-btn"})
		return
	}
	respondOK(c, "categories", "Category deleted successfully", gin.H{"id": id},
		"Category deleted successfully!",
		web.Link{Href: "/categories", Label: "Back to Categories", Class: "nav-btn"})
}
