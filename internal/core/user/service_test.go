package user

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	users []*User
	err   error
}

func newFakeRepo(users ...*User) *fakeRepo {
	return &fakeRepo{users: users}
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeRepo) List(_ context.Context, filter ListUsersFilter) ([]*User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*User
	for _, u := range r.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		result = append(result, u.Clone())
	}
	return result, nil
}

type stubIdentity struct {
	id  string
	err error
}

func (s stubIdentity) CurrentUserID(context.Context) (string, error) {
	return s.id, s.err
}

func seedUsers() []*User {
	return []*User{
		{ID: "user-1", Name: "John Smith", Email: "john@example.com", Role: RoleEmployee, ManagerID: "user-3"},
		{ID: "user-2", Name: "Emily Johnson", Email: "emily@example.com", Role: RoleEmployee, ManagerID: "user-3"},
		{ID: "user-3", Name: "Michael Davis", Email: "michael@example.com", Role: RoleManager},
		{ID: "user-4", Name: "Sarah Wilson", Email: "sarah@example.com", Role: RoleManager},
	}
}

func TestService_GetCurrentUser_DefaultsToFirstSeedUser(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(seedUsers()...), nil, nil)

	u, err := svc.GetCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentUser returned error: %v", err)
	}
	if u.ID != "user-1" {
		t.Fatalf("expected user-1, got %s", u.ID)
	}
}

func TestService_GetCurrentUser_UsesIdentity(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(seedUsers()...), stubIdentity{id: "user-3"}, nil)

	u, err := svc.GetCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentUser returned error: %v", err)
	}
	if !u.IsManager() {
		t.Fatalf("expected manager, got %+v", u)
	}
}

func TestService_GetCurrentUser_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown user": "user-404",
		"blank id":     "",
	}
	for name, id := range cases {
		svc := NewService(newFakeRepo(seedUsers()...), stubIdentity{id: id}, nil)

		u, err := svc.GetCurrentUser(context.Background())
		if err != nil {
			t.Fatalf("%s: GetCurrentUser returned error: %v", name, err)
		}
		if u.ID != DefaultCurrentUserID {
			t.Fatalf("%s: expected %s, got %s", name, DefaultCurrentUserID, u.ID)
		}
	}
}

func TestService_GetCurrentUser_ConfiguredDefault(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(seedUsers()...), stubIdentity{id: "ghost"}, nil, WithDefaultUserID("user-4"))

	u, err := svc.GetCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentUser returned error: %v", err)
	}
	if u.ID != "user-4" {
		t.Fatalf("expected user-4, got %s", u.ID)
	}

	missing := NewService(newFakeRepo(), stubIdentity{id: "ghost"}, nil)
	if _, err := missing.GetCurrentUser(context.Background()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound when the default user is absent, got %v", err)
	}
}

func TestService_GetCurrentUser_IdentityError(t *testing.T) {
	t.Parallel()

	identityErr := errors.New("session store down")
	svc := NewService(newFakeRepo(seedUsers()...), stubIdentity{err: identityErr}, nil)

	if _, err := svc.GetCurrentUser(context.Background()); !errors.Is(err, identityErr) {
		t.Fatalf("expected identity error, got %v", err)
	}
}

func TestService_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(seedUsers()...), nil, nil)

	for _, id := range []string{"nonexistent", "", "   "} {
		if _, err := svc.GetUser(context.Background(), GetUserInput{ID: id}); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("id %q: expected ErrUserNotFound, got %v", id, err)
		}
	}
}

func TestService_GetUser_ReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(seedUsers()...)
	svc := NewService(repo, nil, nil)

	u, err := svc.GetUser(context.Background(), GetUserInput{ID: " user-2 "})
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	u.Name = "changed"

	if repo.users[1].Name != "Emily Johnson" {
		t.Fatalf("repository entity was mutated through returned value")
	}
}

func TestService_ListUsers(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(seedUsers()...), nil, nil)

	all, err := svc.ListUsers(context.Background(), ListUsersInput{})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 users, got %d", len(all))
	}
	for i, want := range []string{"user-1", "user-2", "user-3", "user-4"} {
		if all[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, all[i].ID)
		}
	}

	role := RoleManager
	managers, err := svc.ListUsers(context.Background(), ListUsersInput{Role: &role})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(managers) != 2 || managers[0].ID != "user-3" {
		t.Fatalf("unexpected managers: %+v", managers)
	}
}

func TestService_ListUsers_InvalidRole(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(), nil, nil)
	role := Role("admin")

	if _, err := svc.ListUsers(context.Background(), ListUsersInput{Role: &role}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestService_ListUsers_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(), nil, nil)

	users, err := svc.ListUsers(context.Background(), ListUsersInput{})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", users)
	}
}

func TestValidateDirectory(t *testing.T) {
	t.Parallel()

	if err := ValidateDirectory(seedUsers()); err != nil {
		t.Fatalf("seed users should be valid: %v", err)
	}

	dangling := append(seedUsers(), &User{ID: "user-5", Role: RoleEmployee, ManagerID: "user-9"})
	if err := ValidateDirectory(dangling); !errors.Is(err, ErrUnknownManager) {
		t.Fatalf("expected ErrUnknownManager, got %v", err)
	}

	employeeAsManager := append(seedUsers(), &User{ID: "user-5", Role: RoleEmployee, ManagerID: "user-1"})
	if err := ValidateDirectory(employeeAsManager); !errors.Is(err, ErrUnknownManager) {
		t.Fatalf("expected ErrUnknownManager for employee manager, got %v", err)
	}

	badRole := []*User{{ID: "user-1", Role: Role("ceo")}}
	if err := ValidateDirectory(badRole); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
