package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCredentials(t *testing.T) *CredentialService {
	t.Helper()
	return NewCredentialService(newTestDB(t), "admin", "admin123")
}

func TestGetOrCreateProvisionsDefault(t *testing.T) {
	svc := newTestCredentials(t)

	cred, err := svc.GetOrCreate()
	require.NoError(t, err)
	require.Equal(t, "admin", cred.Username)
	require.NotEmpty(t, cred.ID)
	require.NotEqual(t, "admin123", cred.PasswordHash, "password must be stored hashed")

	// A second call returns the same record, not a new one.
	again, err := svc.GetOrCreate()
	require.NoError(t, err)
	require.Equal(t, cred.ID, again.ID)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestCredentials(t)

	cred, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "admin", cred.Username)

	_, err = svc.Authenticate("admin", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangeCredentials(t *testing.T) {
	svc := newTestCredentials(t)

	newUsername := "sayanton"
	newPassword := "s3cret-pass"
	cred, err := svc.ChangeCredentials("admin123", &newUsername, &newPassword)
	require.NoError(t, err)
	require.Equal(t, "sayanton", cred.Username)

	// Old password no longer works, new pair does.
	_, err = svc.Authenticate("admin", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("sayanton", "s3cret-pass")
	require.NoError(t, err)
}

func TestChangeCredentialsWrongOldPassword(t *testing.T) {
	svc := newTestCredentials(t)

	newPassword := "whatever-else"
	_, err := svc.ChangeCredentials("not-the-password", nil, &newPassword)
	require.ErrorIs(t, err, ErrIncorrectPassword)

	// The stored record is untouched.
	_, err = svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
}

func TestChangeCredentialsShortPassword(t *testing.T) {
	svc := newTestCredentials(t)

	short := "abc"
	_, err := svc.ChangeCredentials("admin123", nil, &short)
	require.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
}

func TestChangeCredentialsNoopBumpsUpdatedAt(t *testing.T) {
	svc := newTestCredentials(t)

	before, err := svc.GetOrCreate()
	require.NoError(t, err)

	after, err := svc.ChangeCredentials("admin123", nil, nil)
	require.NoError(t, err)
	require.Equal(t, before.Username, after.Username)
	require.False(t, after.UpdatedAt.Before(before.UpdatedAt))

	_, err = svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
}

func TestChangeCredentialsEmptyUsernameIgnored(t *testing.T) {
	svc := newTestCredentials(t)

	empty := ""
	cred, err := svc.ChangeCredentials("admin123", &empty, nil)
	require.NoError(t, err)
	require.Equal(t, "admin", cred.Username)
}
