// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook-dev/courtbook/internal/auth"
	"github.com/courtbook-dev/courtbook/internal/core"
	"github.com/courtbook-dev/courtbook/internal/role"
)

type fakeUserRepo struct {
	users        map[string]*User
	reservations map[string]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:        map[string]*User{},
		reservations: map[string]int{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return core.ErrDuplicateKey
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user *User) error {
	if _, ok := f.users[user.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdatePassword(
	_ context.Context,
	id, passwordHash string,
) error {
	u, ok := f.users[id]
	if !ok {
		return core.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountReservations(
	_ context.Context,
	id string,
) (int, error) {
	return f.reservations[id], nil
}

type fakeRoles struct {
	byName map[string]string
	byID   map[string]string
}

func (f *fakeRoles) IDForName(
	_ context.Context,
	name string,
) (string, error) {
	if id, ok := f.byName[name]; ok {
		return id, nil
	}
	return "", core.ErrNotFound
}

func (f *fakeRoles) NameForID(_ context.Context, id string) (string, error) {
	if name, ok := f.byID[id]; ok {
		return name, nil
	}
	return "", core.ErrNotFound
}

type fakeTokens struct {
	issued []auth.AccessTokenClaims
}

func (f *fakeTokens) CreateAccessToken(
	claims auth.AccessTokenClaims,
) (string, error) {
	f.issued = append(f.issued, claims)
	return "token-" + claims.UserID, nil
}

func testSetup() (*fakeUserRepo, *fakeRoles, *fakeTokens, *Service) {
	memberID := uuid.New().String()
	adminID := uuid.New().String()

	repo := newFakeUserRepo()
	roles := &fakeRoles{
		byName: map[string]string{
			role.NameMember: memberID,
			role.NameAdmin:  adminID,
		},
		byID: map[string]string{
			memberID: role.NameMember,
			adminID:  role.NameAdmin,
		},
	}
	tokens := &fakeTokens{}
	svc := NewService(repo, roles, tokens, slog.New(slog.DiscardHandler))
	return repo, roles, tokens, svc
}

func TestRegister_DefaultsToMemberRole(t *testing.T) {
	_, roles, _, svc := testSetup()

	user, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "Ana@Example.COM",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email, "email is lowercased")
	assert.Equal(t, role.NameMember, user.RoleName)
	assert.Equal(t, roles.byName[role.NameMember], user.RoleID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, _, _, svc := testSetup()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Name:     "Other Ana",
		Email:    "ANA@example.com",
		Password: "battery staple",
	})
	require.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestLogin(t *testing.T) {
	_, _, tokens, svc := testSetup()

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
	require.Len(t, tokens.issued, 1)
	assert.Equal(t, role.NameMember, tokens.issued[0].Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, _, tokens, svc := testSetup()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong password",
	})

	require.ErrorIs(t, err, core.ErrUnauthorized)
	assert.Empty(t, tokens.issued)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, _, _, svc := testSetup()

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever passes",
	})

	require.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	_, _, _, svc := testSetup()

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(
		context.Background(),
		registered.ID,
		ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "battery staple",
		},
	)
	require.ErrorIs(t, err, core.ErrUnauthorized)

	err = svc.ChangePassword(
		context.Background(),
		registered.ID,
		ChangePasswordRequest{
			CurrentPassword: "correct horse",
			NewPassword:     "battery staple",
		},
	)
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "battery staple",
	})
	require.NoError(t, err)
}

func TestDeleteUser_BlockedByReservations(t *testing.T) {
	repo, _, _, svc := testSetup()

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	repo.reservations[registered.ID] = 3

	err = svc.Delete(context.Background(), registered.ID)
	require.ErrorIs(t, err, core.ErrConflict)

	repo.reservations[registered.ID] = 0
	require.NoError(t, svc.Delete(context.Background(), registered.ID))
}

func TestUserResponseOmitsPasswordHash(t *testing.T) {
	_, _, _, svc := testSetup()

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	resp := ToUserResponse(registered)
	assert.Equal(t, registered.ID, resp.ID)
	assert.Equal(t, registered.Email, resp.Email)
}
