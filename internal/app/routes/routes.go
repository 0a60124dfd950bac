// Package routes wires the HTTP surface: the JSON API under /api, the
// server-rendered pages and form handlers at the root, and the health
// check.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naveen/management/internal/app/controllers"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/middleware"
)

// Controllers bundles everything Register needs.
type Controllers struct {
	User     *controllers.UserController
	Category *controllers.CategoryController
	Student  *controllers.StudentController
	Product  *controllers.ProductController
	Health   *controllers.HealthController
}

// Register attaches all routes to the router.
func Register(router *gin.Engine, ctl Controllers) {
	api := router.Group("/api")
	{
		api.GET("/users", ctl.User.ListUsers)
		api.GET("/students", ctl.Student.ListStudents)
		api.GET("/products", ctl.Product.ListProducts)
		api.GET("/categories", ctl.Category.ListCategories)
	}

	// Overview pages.
	router.GET("/", ctl.User.UsersPage)
	router.GET("/students", ctl.Student.StudentsPage)
	router.GET("/products", ctl.Product.ProductsPage)
	router.GET("/categories", ctl.Category.CategoriesPage)

	// Forms.
	router.GET("/add-user", ctl.User.AddUserForm)
	router.GET("/edit-user/:id", ctl.User.EditUserForm)
	router.GET("/add-student", ctl.Student.AddStudentForm)
	router.GET("/edit-student/:id", ctl.Student.EditStudentForm)
	router.GET("/add-product", ctl.Product.AddProductForm)
	router.GET("/edit-product/:id", ctl.Product.EditProductForm)
	router.GET("/add-category", ctl.Category.AddCategoryForm)
	router.GET("/edit-category/:id", ctl.Category.EditCategoryForm)

	// Mutations. Deletes ride on GET so the table row links work.
	router.POST("/add-user", ctl.User.CreateUser)
	router.POST("/edit-user/:id", ctl.User.UpdateUser)
	router.GET("/delete-user/:id", ctl.User.DeleteUser)

	router.POST("/add-student", ctl.Student.CreateStudent)
	router.POST("/edit-student/:id", ctl.Student.UpdateStudent)
	router.GET("/delete-student/:id", ctl.Student.DeleteStudent)

	router.POST("/add-product", ctl.Product.CreateProduct)
	router.POST("/edit-product/:id", ctl.Product.UpdateProduct)
	router.GET("/delete-product/:id", ctl.Product.DeleteProduct)

	router.POST("/add-category", ctl.Category.CreateCategory)
	router.POST("/edit-category/:id", ctl.Category.UpdateCategory)
	router.GET("/delete-category/:id", ctl.Category.DeleteCategory)

	router.GET("/health", ctl.Health.Health)

	router.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not Found", "The requested resource does not exist."))
		return
	}
	c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{
		"Title":  "Page Not Found",
		"Active": "",
	})
}
