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

// UserController handles the user API endpoints and the user pages.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller.
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers returns all users as a JSON envelope.
func (ctl *UserController) ListUsers(c *gin.Context) {
	users, err := ctl.userService.ListUsers(c)
	if err != nil {
		middleware.HandleAPIError(c, "Error fetching users", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse("Users fetched successfully", len(users), users))
}

// UsersPage renders the user overview table.
func (ctl *UserController) UsersPage(c *gin.Context) {
	users, err := ctl.userService.ListUsersNewestFirst(c)
	if err != nil {
		respondListError(c, "Error fetching users", "users", err)
		return
	}
	c.HTML(http.StatusOK, "users_list.tmpl", gin.H{
		"Title":  "User Management",
		"Active": "users",
		"Users":  users,
	})
}

// AddUserForm renders the empty user form.
func (ctl *UserController) AddUserForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user_form.tmpl", gin.H{
		"Title":  "Add User",
		"Active": "users",
		"Action": "/add-user",
	})
}

// EditUserForm renders the user form pre-filled with an existing row.
func (ctl *UserController) EditUserForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid user ID", "users", "/", "Back to Users")
		return
	}
	user, err := ctl.userService.GetUserByID(c, id)
	if err != nil {
		respondOperationError(c, "Error fetching user", "users", err,
			web.Link{Href: "/", Label: "Back to Users", Class: "nav-btn"})
		return
	}
	c.HTML(http.StatusOK, "user_form.tmpl", gin.H{
		"Title":  "Edit User",
		"Active": "users",
		"Action": fmt.Sprintf("/edit-user/%d", user.ID),
		"User":   user,
	})
}

// CreateUser adds a new user from a form or JSON body.
func (ctl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error adding user", "users", err,
			web.Link{Href: "/add-user", Label: "Try Again", Class: "nav-btn"})
		return
	}
	user, err := ctl.userService.CreateUser(c, req)
	if err != nil {
		respondOperationError(c, "Error adding user", "users", err,
			web.Link{Href: "/add-user", Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/", Label: "Back to Users", Class: "nav-btn"})
		return
	}
	respondCreated(c, "users", "User added successfully", user.ID,
		fmt.Sprintf("User added successfully! ID: %d", user.ID),
		web.Link{Href: "/", Label: "Back to Users", Class: "nav-btn"},
		web.Link{Href: "/add-user", Label: "Add Another User", Class: "nav-btn"})
}

// UpdateUser applies edits to an existing user.
func (ctl *UserController) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid user ID", "users", "/", "Back to Users")
		return
	}
	var req dto.UpdateUserRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error updating user", "users", err,
			web.Link{Href: fmt.Sprintf("/edit-user/%d", id), Label: "Try Again", Class: "nav-btn"})
		return
	}
	if _, err := ctl.userService.UpdateUser(c, id, req); err != nil {
		respondOperationError(c, "Error updating user", "users", err,
			web.Link{Href: fmt.Sprintf("/edit-user/%d", id), Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/", Label: "Back to Users", Class: "nav-btn"})
		return
	}
	respondOK(c, "users", "User updated successfully", gin.H{"id": id},
		"User updated successfully!",
		web.Link{Href: "/", Label: "Back to Users", Class: "nav-btn"},
		web.Link{Href: fmt.Sprintf("/edit-user/%d", id), Label: "Edit Again", Class: "nav-btn"})
}

// DeleteUser removes a user. Deleting an id that no longer exists still
// reports success.
func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid user ID", "users", "/", "Back to Users")
		return
	}
	if err := ctl.userService.DeleteUser(c, id); err != nil {
		respondOperationError(c, "Error deleting user", "users", err,
			web.Link{Href: "/", Label: "Back to Users", Class: "nav-btn"})
		return
	}
	respondOK(c, "users", "User deleted successfully", gin.H{"id": id},
		"User deleted successfully!",
		web.Link{Href: "/", Label: "Back to Users", Class: "nav-btn"})
}
