package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db)), db
}

func TestCreateEmployee(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.CreateEmployee("eve", "eve@example.com", "long enough pw")
	require.NoError(t, err)
	assert.Equal(t, model.Employee, user.Role)

	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "long enough pw", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("long enough pw")))

	_, err = svc.CreateEmployee("eve2", "eve@example.com", "another password")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestGetEmployeesExcludesAdmins(t *testing.T) {
	svc, db := newUserService(t)
	createUser(t, db, "root", model.Admin)
	createUser(t, db, "eve", model.Employee)
	createUser(t, db, "bob", model.Employee)

	employees, err := svc.GetEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 2)
	for _, e := range employees {
		assert.Equal(t, model.Employee, e.Role)
	}
}

func TestUserUpdatePartial(t *testing.T) {
	svc, db := newUserService(t)
	user := createUser(t, db, "eve", model.Employee)

	name := "eve renamed"
	updated, err := svc.Update(user.ID, UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "eve renamed", updated.Name)
	assert.Equal(t, user.Email, updated.Email)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	svc, db := newUserService(t)
	createUser(t, db, "eve", model.Employee)
	bob := createUser(t, db, "bob", model.Employee)

	taken := "eve@example.com"
	_, err := svc.Update(bob.ID, UserUpdate{Email: &taken})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestUserDelete(t *testing.T) {
	svc, db := newUserService(t)
	user := createUser(t, db, "eve", model.Employee)

	require.NoError(t, svc.Delete(user.ID))

	_, err := svc.GetByID(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(999), gorm.ErrRecordNotFound)
}
