package society_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoginAndMe verifies the cookie session flow end to end.
func TestLoginAndMe(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	ownerClient, _ := setupOwner(t, baseURL)

	me, err := ownerClient.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, ownerName, me.FullName)
	require.Equal(t, "owner", me.Role)
}

// TestLoginRejectsBadCredentials verifies wrong passwords and unknown emails
// both come back as 401 without distinguishing which was wrong.
func TestLoginRejectsBadCredentials(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	setupOwner(t, baseURL)

	client := newClient(t, baseURL)

	_, err := client.Login(t.Context(), ownerEmail, "WrongPassword1!")
	assertStatus(t, err, http.StatusUnauthorized, "Wrong password")

	_, err = client.Login(t.Context(), "nobody@greenfield.test", ownerPassword)
	assertStatus(t, err, http.StatusUnauthorized, "Unknown email")
}

// TestLogoutClearsSession verifies the session cookie stops working after
// logout.
func TestLogoutClearsSession(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	ownerClient, _ := setupOwner(t, baseURL)

	_, err := ownerClient.Me(t.Context())
	require.NoError(t, err)

	err = ownerClient.Logout(t.Context())
	require.NoError(t, err)

	_, err = ownerClient.Me(t.Context())
	assertStatus(t, err, http.StatusUnauthorized, "Me after logout")
}

// TestProtectedEndpointsRequireSession verifies unauthenticated requests are
// rejected.
func TestProtectedEndpointsRequireSession(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	client := newClient(t, baseURL)

	_, err := client.Me(t.Context())
	assertStatus(t, err, http.StatusUnauthorized, "Me without session")

	_, err = client.ListPools(t.Context())
	assertStatus(t, err, http.StatusUnauthorized, "ListPools without session")
}
