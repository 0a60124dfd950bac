package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naveen/management/internal/app/controllers"
	"github.com/naveen/management/internal/app/models"
	"github.com/naveen/management/internal/app/routes"
	"github.com/naveen/management/internal/app/services"
	"github.com/naveen/management/internal/web"
)

// In-memory stores giving the controllers a live data path without a
// database connection. Health is exercised separately since it pings the
// pool directly.

type memUserStore struct {
	rows   []*models.User
	nextID int64
}

func (m *memUserStore) List(ctx context.Context) ([]*models.User, error) { return m.rows, nil }
func (m *memUserStore) ListNewestFirst(ctx context.Context) ([]*models.User, error) {
	return m.rows, nil
}
func (m *memUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range m.rows {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserStore) Create(ctx context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.rows = append(m.rows, user)
	return nil
}
func (m *memUserStore) Update(ctx context.Context, user *models.User, withPassword bool) error {
	for i, u := range m.rows {
		if u.ID == user.ID {
			if !withPassword {
				user.Password = u.Password
			}
			m.rows[i] = user
			return nil
		}
	}
	return nil
}
func (m *memUserStore) Delete(ctx context.Context, id int64) error {
	for i, u := range m.rows {
		if u.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type memCategoryStore struct {
	rows       []*models.Category
	nextID     int64
	references int64
}

func (m *memCategoryStore) ListByName(ctx context.Context) ([]*models.Category, error) {
	return m.rows, nil
}
func (m *memCategoryStore) ListNewestFirst(ctx context.Context) ([]*models.Category, error) {
	return m.rows, nil
}
func (m *memCategoryStore) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	for _, c := range m.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memCategoryStore) Create(ctx context.Context, category *models.Category) error {
	m.nextID++
	category.ID = m.nextID
	m.rows = append(m.rows, category)
	return nil
}
func (m *memCategoryStore) Update(ctx context.Context, category *models.Category) error {
	return nil
}
func (m *memCategoryStore) Delete(ctx context.Context, id int64) error {
	for i, c := range m.rows {
		if c.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}
func (m *memCategoryStore) CountReferences(ctx context.Context, id int64) (int64, error) {
	return m.references, nil
}

type memStudentStore struct {
	rows   []*models.Student
	nextID int64
}

func (m *memStudentStore) List(ctx context.Context) ([]*models.Student, error) { return m.rows, nil }
func (m *memStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	for _, s := range m.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (m *memStudentStore) Create(ctx context.Context, student *models.Student) error {
	m.nextID++
	student.ID = m.nextID
	m.rows = append(m.rows, student)
	return nil
}
func (m *memStudentStore) Update(ctx context.Context, student *models.Student) error { return nil }
func (m *memStudentStore) Delete(ctx context.Context, id int64) error                { return nil }

type memProductStore struct {
	rows   []*models.Product
	nextID int64
}

func (m *memProductStore) List(ctx context.Context) ([]*models.Product, error) { return m.rows, nil }
func (m *memProductStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	for _, p := range m.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memProductStore) Create(ctx context.Context, product *models.Product) error {
	m.nextID++
	product.ID = m.nextID
	m.rows = append(m.rows, product)
	return nil
}
func (m *memProductStore) Update(ctx context.Context, product *models.Product) error { return nil }
func (m *memProductStore) Delete(ctx context.Context, id int64) error                { return nil }

type testEnv struct {
	router     *gin.Engine
	users      *memUserStore
	categories *memCategoryStore
	students   *memStudentStore
	products   *memProductStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:      &memUserStore{},
		categories: &memCategoryStore{},
		students:   &memStudentStore{},
		products:   &memProductStore{},
	}

	userSvc := services.NewUserService(env.users)
	categorySvc := services.NewCategoryService(env.categories)
	studentSvc := services.NewStudentService(env.students)
	productSvc := services.NewProductService(env.products)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	routes.Register(router, routes.Controllers{
		User:     controllers.NewUserController(userSvc),
		Category: controllers.NewCategoryController(categorySvc),
		Student:  controllers.NewStudentController(studentSvc, categorySvc),
		Product:  controllers.NewProductController(productSvc, categorySvc),
		Health:   nil,
	})
	env.router = router
	return env
}

func (e *testEnv) doJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Accept", "application/json")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doForm(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body string
	if form != nil {
		body = form.Encode()
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Accept", "text/html")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestListUsersJSON(t *testing.T) {
	env := newTestEnv(t)
	env.users.rows = []*models.User{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}

	w := env.doJSON(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, "Users fetched successfully", payload["message"])
	assert.Equal(t, float64(2), payload["count"])
	assert.Len(t, payload["data"], 2)
}

func TestListEndpointsEmptyJSON(t *testing.T) {
	// A fresh install has zero rows everywhere; the data field must still be
	// an array because the client iterates it without a nil check.
	env := newTestEnv(t)

	for _, path := range []string{"/api/users", "/api/students", "/api/products", "/api/categories"} {
		t.Run(path, func(t *testing.T) {
			w := env.doJSON(http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)

			payload := decodeBody(t, w)
			assert.Equal(t, float64(0), payload["count"])
			data, ok := payload["data"].([]any)
			require.True(t, ok, "data must be a JSON array, got %T", payload["data"])
			assert.Empty(t, data)
		})
	}
}

func TestCreateUserJSON(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(http.MethodPost, "/add-user",
		`{"username":"alice","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, "User added successfully", payload["message"])
	data := payload["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
}

func TestCreateUserValidationJSON(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(http.MethodPost, "/add-user", `{"username":"alice"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, "Error adding user", payload["message"])
	assert.Equal(t, "Missing required fields: username, email, and password are required", payload["error"])
}

func TestCreateUserForm(t *testing.T) {
	env := newTestEnv(t)

	w := env.doForm(http.MethodPost, "/add-user", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"secret"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User added successfully! ID: 1")
	assert.Contains(t, w.Body.String(), "Back to Users")
}

func TestCreateUserFormValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.doForm(http.MethodPost, "/add-user", url.Values{"username": {"alice"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
	assert.Contains(t, w.Body.String(), "Try Again")
}

func TestDeleteCategoryBlocked(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		env.categories.rows = []*models.Category{{ID: 5, Name: "Tech"}}
		env.categories.references = 2

		w := env.doJSON(http.MethodGet, "/delete-category/5", "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		payload := decodeBody(t, w)
		assert.Equal(t, "Cannot delete category: It is referenced by products or students", payload["error"])
		assert.Len(t, env.categories.rows, 1)
	})

	t.Run("html", func(t *testing.T) {
		env := newTestEnv(t)
		env.categories.rows = []*models.Category{{ID: 5, Name: "Tech"}}
		env.categories.references = 2

		w := env.doForm(http.MethodGet, "/delete-category/5", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Cannot delete category")
		assert.Contains(t, w.Body.String(), "Back to Categories")
	})
}

func TestDeleteCategoryUnreferenced(t *testing.T) {
	env := newTestEnv(t)
	env.categories.rows = []*models.Category{{ID: 5, Name: "Tech"}}

	w := env.doJSON(http.MethodGet, "/delete-category/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.categories.rows)
}

func TestDeleteUserIdempotent(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(http.MethodGet, "/delete-user/99", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, "User deleted successfully", payload["message"])
}

func TestInvalidIDRejected(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(http.MethodGet, "/delete-user/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, "Invalid user ID", payload["message"])
}

func TestEditFormNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.doForm(http.MethodGet, "/edit-user/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestCreateProductWithNumericJSONFields(t *testing.T) {
	env := newTestEnv(t)
	env.categories.rows = []*models.Category{{ID: 2, Name: "Tech"}}

	w := env.doJSON(http.MethodPost, "/add-product",
		`{"name":"Laptop","price":999.5,"stock":3,"category_id":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, env.products.rows, 1)
	created := env.products.rows[0]
	assert.Equal(t, 999.5, created.Price)
	assert.Equal(t, 3, created.Stock)
	require.NotNil(t, created.CategoryID)
	assert.Equal(t, int64(2), *created.CategoryID)
}

func TestCreateProductBadPrice(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(http.MethodPost, "/add-product", `{"name":"Laptop","price":"free"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, "Price must be a valid positive number", payload["error"])
}

func TestUsersPageHTML(t *testing.T) {
	env := newTestEnv(t)
	env.users.rows = []*models.User{{ID: 1, Username: "alice", Email: "alice@example.com"}}

	w := env.doForm(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), "Add New User")
}

func TestStudentFormCarriesCategoryDropdown(t *testing.T) {
	env := newTestEnv(t)
	env.categories.rows = []*models.Category{{ID: 1, Name: "General"}, {ID: 2, Name: "Tech"}}

	w := env.doForm(http.MethodGet, "/add-student", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "General")
	assert.Contains(t, w.Body.String(), "Tech")
}

func TestNoRoute(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.doJSON(http.MethodGet, "/nope", "")
		require.Equal(t, http.StatusNotFound, w.Code)

		payload := decodeBody(t, w)
		assert.Equal(t, "Not Found", payload["message"])
	})

	t.Run("html", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.doForm(http.MethodGet, "/nope", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page Not Found")
	})
}
