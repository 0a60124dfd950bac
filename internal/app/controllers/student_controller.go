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

// StudentController handles the student API endpoints and pages. The add
// and edit forms also need the category list for their dropdown, so the
// controller depends on both services.
type StudentController struct {
	studentService  *services.StudentService
	categoryService *services.CategoryService
}

// NewStudentController creates a new student controller.
func NewStudentController(studentService *services.StudentService, categoryService *services.CategoryService) *StudentController {
	return &StudentController{studentService: studentService, categoryService: categoryService}
}

// ListStudents returns all students as a JSON envelope, each joined with
// its category name.
func (ctl *StudentController) ListStudents(c *gin.Context) {
	students, err := ctl.studentService.ListStudents(c)
	if err != nil {
		middleware.HandleAPIError(c, "Error fetching students", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse("Students fetched successfully", len(students), students))
}

// StudentsPage renders the student overview table.
func (ctl *StudentController) StudentsPage(c *gin.Context) {
	students, err := ctl.studentService.ListStudents(c)
	if err != nil {
		respondListError(c, "Error fetching students", "students", err)
		return
	}
	c.HTML(http.StatusOK, "students_list.tmpl", gin.H{
		"Title":    "Student Management",
		"Active":   "students",
		"Students": students,
	})
}

// AddStudentForm renders the empty student form with the category dropdown.
func (ctl *StudentController) AddStudentForm(c *gin.Context) {
	categories, err := ctl.categoryService.ListCategoriesByName(c)
	if err != nil {
		respondListError(c, "Error fetching categories", "students", err)
		return
	}
	c.HTML(http.StatusOK, "student_form.tmpl", gin.H{
		"Title":      "Add Student",
		"Active":     "students",
		"Action":     "/add-student",
		"Categories": categories,
	})
}

// EditStudentForm renders the student form pre-filled with an existing row.
func (ctl *StudentController) EditStudentForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid student ID", "students", "/students", "Back to Students")
		return
	}
	student, err := ctl.studentService.GetStudentByID(c, id)
	if err != nil {
		respondOperationError(c, "Error fetching student", "students", err,
			web.Link{Href: "/students", Label: "Back to Students", Class: "nav-btn"})
		return
	}
	categories, err := ctl.categoryService.ListCategoriesByName(c)
	if err != nil {
		respondListError(c, "Error fetching categories", "students", err)
		return
	}
	c.HTML(http.StatusOK, "student_form.tmpl", gin.H{
		"Title":      "Edit Student",
		"Active":     "students",
		"Action":     fmt.Sprintf("/edit-student/%d", student.ID),
		"Student":    student,
		"Categories": categories,
	})
}

// CreateStudent adds a new student from a form or JSON body.
func (ctl *StudentController) CreateStudent(c *gin.Context) {
	var req dto.StudentRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error adding student", "students", err,
			web.Link{Href: "/add-student", Label: "Try Again", Class: "nav-btn"})
		return
	}
	student, err := ctl.studentService.CreateStudent(c, req)
	if err != nil {
		respondOperationError(c, "Error adding student", "students", err,
			web.Link{Href: "/add-student", Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/students", Label: "Back to Students", Class: "nav-btn"})
		return
	}
	respondCreated(c, "students", "Student added successfully", student.ID,
		fmt.Sprintf("Student added successfully! ID: %d", student.ID),
		web.Link{Href: "/students", Label: "Back to Students", Class: "nav-btn"},
		web.Link{Href: "/add-student", Label: "Add Another Student", Class: "nav-btn"})
}

// UpdateStudent applies edits to an existing student.
func (ctl *StudentController) UpdateStudent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid student ID", "students", "/students", "Back to Students")
		return
	}
	var req dto.StudentRequest
	if err := bindRequest(c, &req); err != nil {
		respondOperationError(c, "Error updating student", "students", err,
			web.Link{Href: fmt.Sprintf("/edit-student/%d", id), Label: "Try Again", Class: "nav-btn"})
		return
	}
	if _, err := ctl.studentService.UpdateStudent(c, id, req); err != nil {
		respondOperationError(c, "Error updating student", "students", err,
			web.Link{Href: fmt.Sprintf("/edit-student/%d", id), Label: "Try Again", Class: "nav-btn"},
			web.Link{Href: "/students", Label: "Back to Students", Class: "nav-btn"})
		return
	}
	respondOK(c, "students", "Student updated successfully", gin.H{"id": id},
		"Student updated successfully!",
		web.Link{Href: "/students", Label: "Back to Students", Class: "nav-btn"},
		web.Link{Href: fmt.Sprintf("/edit-student/%d", id), Label: "Edit Again", Class: "nav-btn"})
}

// DeleteStudent removes a student. Deleting an id that no longer exists
// still reports success.
func (ctl *StudentController) DeleteStudent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondInvalidID(c, "Invalid student ID", "students", "/students", "Back to Students")
		return
	}
	if err := ctl.studentService.DeleteStudent(c, id); err != nil {
		respondOperationError(c, "Error deleting student", "students", err,
			web.Link{Href: "/students", Label: "Back to Students", Class: "nav-btn"})
		return
	}
	respondOK(c, "students", "Student deleted successfully", gin.H{"id": id},
		"Student deleted successfully!",
		web.Link{Href: "/students", Label: "Back to Students", Class: "nav-btn"})
}
