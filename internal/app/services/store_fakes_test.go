package services

import (
	"context"

	"github.com/naveen/management/internal/app/models"
)

// Fake stores record calls and return scripted results so service rules can
// be exercised without a database.

type fakeUserStore struct {
	users     []*models.User
	listErr   error
	getResult *models.User
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	created      *models.User
	updated      *models.User
	withPassword bool
	deletedID    int64
	createCalls  int
}

func (f *fakeUserStore) List(ctx context.Context) ([]*models.User, error) {
	return f.users, f.listErr
}

func (f *fakeUserStore) ListNewestFirst(ctx context.Context) ([]*models.User, error) {
	return f.users, f.listErr
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.getResult, f.getErr
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = 1
	f.created = user
	return nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *models.User, withPassword bool) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = user
	f.withPassword = withPassword
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeCategoryStore struct {
	categories []*models.Category
	listErr    error
	getResult  *models.Category
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	references int64
	countErr   error

	created     *models.Category
	updated     *models.Category
	deletedID   int64
	deleteCalls int
}

func (f *fakeCategoryStore) ListByName(ctx context.Context) ([]*models.Category, error) {
	return f.categories, f.listErr
}

func (f *fakeCategoryStore) ListNewestFirst(ctx context.Context) ([]*models.Category, error) {
	return f.categories, f.listErr
}

func (f *fakeCategoryStore) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return f.getResult, f.getErr
}

func (f *fakeCategoryStore) Create(ctx context.Context, category *models.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	category.ID = 1
	f.created = category
	return nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, category *models.Category) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = category
	return nil
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func (f *fakeCategoryStore) CountReferences(ctx context.Context, id int64) (int64, error) {
	return f.references, f.countErr
}

type fakeStudentStore struct {
	students  []*models.Student
	listErr   error
	getResult *models.Student
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	created   *models.Student
	updated   *models.Student
	deletedID int64
}

func (f *fakeStudentStore) List(ctx context.Context) ([]*models.Student, error) {
	return f.students, f.listErr
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return f.getResult, f.getErr
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	student.ID = 1
	f.created = student
	return nil
}

func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = student
	return nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeProductStore struct {
	products  []*models.Product
	listErr   error
	getResult *models.Product
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	created   *models.Product
	updated   *models.Product
	deletedID int64
}

func (f *fakeProductStore) List(ctx context.Context) ([]*models.Product, error) {
	return f.products, f.listErr
}

func (f *fakeProductStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return f.getResult, f.getErr
}

func (f *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	product.ID = 1
	f.created = product
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, product *models.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = product
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}
