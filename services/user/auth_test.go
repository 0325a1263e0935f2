package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "mockview/database/repository/user"
	"mockview/models"
	"mockview/utils"
)

// fakeUsers is an in-memory UserRepository.
type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) Create(user *models.User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUsers) GetByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Update(user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
		}
	}
	return nil
}

func (f *fakeUsers) UpdateFCMToken(id, token string) error { return nil }

func (f *fakeUsers) IncrementSessionCounts(id string, total, completed int) error { return nil }

func (f *fakeUsers) FindMentors(field string) ([]models.User, error) { return nil, nil }

var _ userRepo.UserRepository = (*fakeUsers)(nil)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(&fakeUsers{})

	resp, err := svc.Register(RegisterRequest{
		Name: "Cara", Email: "Cara@Example.com", Password: "correct-horse", Role: models.RoleCandidate,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "cara@example.com", resp.User.Email, "email is normalized")
	assert.NotEqual(t, "correct-horse", resp.User.Password, "password is stored hashed")
	assert.True(t, resp.User.IsActive)

	userID, role, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, models.RoleCandidate, role)

	login, err := svc.Authenticate("cara@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Authenticate("cara@example.com", "wrong-password")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	_, err = svc.Authenticate("nobody@example.com", "whatever")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(&fakeUsers{})

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@b.com", Password: "long-enough"}},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.com", Password: "short"}},
		{"bad role", RegisterRequest{Name: "A", Email: "a@b.com", Password: "long-enough", Role: "admin"}},
		{"mentor without specializations", RegisterRequest{Name: "A", Email: "a@b.com", Password: "long-enough", Role: models.RoleMentor}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "got %v", err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(&fakeUsers{})

	_, err := svc.Register(RegisterRequest{Name: "A", Email: "a@b.com", Password: "long-enough"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterRequest{Name: "B", Email: "a@b.com", Password: "long-enough"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestRegisterMentor(t *testing.T) {
	svc := NewUserService(&fakeUsers{})

	resp, err := svc.Register(RegisterRequest{
		Name: "Mo", Email: "mo@b.com", Password: "long-enough",
		Role: models.RoleMentor, Specializations: []string{"DSA"}, Experience: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMentor, resp.User.Role)
	assert.Equal(t, []string{"DSA"}, resp.User.Specializations)
}

func TestUpdateProfile(t *testing.T) {
	repo := &fakeUsers{}
	svc := NewUserService(repo)

	resp, err := svc.Register(RegisterRequest{
		Name: "Mo", Email: "mo@b.com", Password: "long-enough",
		Role: models.RoleMentor, Specializations: []string{"DSA"},
	})
	require.NoError(t, err)

	bio := "ten years of interviews"
	updated, err := svc.UpdateProfile(resp.User.ID, ProfileUpdate{
		Bio:          &bio,
		WorkingHours: &models.WorkingHours{Start: 10, End: 16},
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	require.NotNil(t, updated.WorkingHours)
	assert.Equal(t, 10, updated.WorkingHours.Start)
	assert.Equal(t, "Mo", updated.Name, "unset fields are untouched")
}

func TestUpdateProfileRejectsBadWorkingHours(t *testing.T) {
	svc := NewUserService(&fakeUsers{})
	resp, err := svc.Register(RegisterRequest{Name: "A", Email: "a@b.com", Password: "long-enough"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(resp.User.ID, ProfileUpdate{
		WorkingHours: &models.WorkingHours{Start: 17, End: 9},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewUserService(&fakeUsers{})
	_, err := svc.GetByID("ghost")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
