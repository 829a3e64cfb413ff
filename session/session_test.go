package session

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketry-shop/models"
	"rocketry-shop/storage"
)

func newStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	return New(context.Background(), kv, DemoTables()), kv
}

func TestLoginSuccess(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	result := s.Login(ctx, "teacher@school.edu", "teacher123")
	require.True(t, result.Success)

	user := s.Current()
	require.NotNil(t, user)
	assert.Equal(t, "Teacher Demo", user.Name)
	assert.False(t, user.IsAdmin)
	assert.True(t, s.IsAuthenticated())

	profile := s.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Manchester", profile.Address.City)

	assert.Len(t, s.Orders(), 2)

	raw, ok, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted models.Identity
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, "2", persisted.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newStore(t)

	result := s.Login(context.Background(), "admin@rocketryforschools.co.uk", "wrongpass")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password", result.Message)
	assert.Nil(t, s.Current())
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	s, _ := newStore(t)

	wrongPassword := s.Login(context.Background(), "admin@rocketryforschools.co.uk", "nope")
	unknownEmail := s.Login(context.Background(), "nobody@nowhere.org", "nope")

	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
}

func TestLoginEmptyFields(t *testing.T) {
	s, _ := newStore(t)

	for _, tc := range []struct{ email, password string }{
		{"", "teacher123"},
		{"teacher@school.edu", ""},
		{"", ""},
	} {
		result := s.Login(context.Background(), tc.email, tc.password)
		assert.False(t, result.Success)
		assert.Equal(t, "Email and password are required", result.Message)
	}
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	result := s.Register(ctx, "", "a@b.com", "longenough")
	assert.Equal(t, "All fields are required", result.Message)

	result = s.Register(ctx, "A", "a@b.com", "short")
	assert.Equal(t, "Password must be at least 6 characters", result.Message)

	result = s.Register(ctx, "A", "teacher@school.edu", "longenough")
	assert.Equal(t, "Email already in use", result.Message)

	assert.False(t, s.IsAuthenticated())
}

func TestRegisterSuccess(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	result := s.Register(ctx, "New Teacher", "new@school.edu", "secret99")
	require.True(t, result.Success)

	user := s.Current()
	require.NotNil(t, user)
	assert.True(t, strings.HasPrefix(user.ID, "user-"))
	assert.Equal(t, "New Teacher", user.Name)
	assert.False(t, user.IsAdmin)

	profile := s.Profile()
	require.NotNil(t, profile)
	require.NotNil(t, profile.Preferences)
	assert.True(t, profile.Preferences.EmailNotifications)
	assert.False(t, profile.Preferences.Marketing)
	assert.Nil(t, profile.Address)

	assert.Empty(t, s.Orders())

	_, ok, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisteredAccountCannotLogBackIn(t *testing.T) {
	// Registration is session-local: it is never added to the lookup tables,
	// so the same credentials fail after logout.
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Register(ctx, "New Teacher", "new@school.edu", "secret99").Success)
	s.Logout(ctx)

	result := s.Login(ctx, "new@school.edu", "secret99")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password", result.Message)
}

func TestRegisterSameEmailTwiceInOneSession(t *testing.T) {
	// Only the fixed table is consulted, so a repeated registration with the
	// same email succeeds again.
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Register(ctx, "A", "new@school.edu", "secret99").Success)
	assert.True(t, s.Register(ctx, "B", "new@school.edu", "secret99").Success)
	assert.Equal(t, "B", s.Current().Name)
}

func TestLogout(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	require.True(t, s.Login(ctx, "teacher@school.edu", "teacher123").Success)
	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Current())
	assert.Nil(t, s.Profile())
	assert.Empty(t, s.Orders())

	_, ok, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateProfileRequiresLogin(t *testing.T) {
	s, _ := newStore(t)

	phone := "123"
	result := s.UpdateProfile(models.ProfilePatch{Phone: &phone})
	assert.False(t, result.Success)
	assert.Equal(t, "You must be logged in to update your profile", result.Message)
}

func TestUpdateProfileMerges(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Login(ctx, "teacher@school.edu", "teacher123").Success)

	phone := "123"
	result := s.UpdateProfile(models.ProfilePatch{Phone: &phone})
	require.True(t, result.Success)

	profile := s.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "123", profile.Phone)
	// Untouched fields survive the merge.
	require.NotNil(t, profile.Address)
	assert.Equal(t, "45 Education Road", profile.Address.Street)
}

func TestUpdateProfileDoesNotSurviveFreshLogin(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Login(ctx, "teacher@school.edu", "teacher123").Success)
	phone := "123"
	require.True(t, s.UpdateProfile(models.ProfilePatch{Phone: &phone}).Success)

	s.Logout(ctx)
	require.True(t, s.Login(ctx, "teacher@school.edu", "teacher123").Success)

	assert.Equal(t, "0161 987 6543", s.Profile().Phone)
}

func TestRehydrateFromStorage(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	first := New(ctx, kv, DemoTables())
	require.True(t, first.Login(ctx, "teacher@school.edu", "teacher123").Success)

	second := New(ctx, kv, DemoTables())
	require.True(t, second.IsAuthenticated())
	assert.Equal(t, "Teacher Demo", second.Current().Name)
	assert.Len(t, second.Orders(), 2)
	require.NotNil(t, second.Profile())
}

func TestRehydrateMalformedResetsToAnonymous(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, Key, []byte("{broken")))

	s := New(ctx, kv, DemoTables())
	assert.False(t, s.IsAuthenticated())

	// The malformed value is discarded from storage as well.
	_, ok, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	assert.False(t, ok)
}
