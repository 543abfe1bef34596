package society_test

import (
	"net/http"
	"testing"

	"github.com/strataworks/societyd/pkg/societysdk"
	"github.com/stretchr/testify/require"
)

// TestOwnerRegistration verifies that registering an owner creates the
// society and hands back a join code for members.
func TestOwnerRegistration(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	client := newClient(t, baseURL)

	resp, err := client.RegisterOwner(t.Context(), societysdk.RegisterOwnerRequest{
		Email:       ownerEmail,
		Password:    ownerPassword,
		FullName:    ownerName,
		SocietyName: societyName,
	})
	require.NoError(t, err)

	require.Equal(t, "owner", resp.Profile.Role)
	require.Equal(t, ownerName, resp.Profile.FullName)
	require.NotEmpty(t, resp.Profile.ID)
	require.NotEmpty(t, resp.Profile.OrganizationID, "Owner profile should be linked to the new society")
	require.Regexp(t, `^[0-9A-Z]{3}-[0-9A-Z]{3}$`, resp.JoinCode)
}

// TestResidentRegistration verifies the full join-code signup path for a
// resident.
func TestResidentRegistration(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	ownerClient, joinCode := setupOwner(t, baseURL)

	client := newClient(t, baseURL)
	resp, err := client.RegisterResident(t.Context(), societysdk.RegisterResidentRequest{
		Email:    "rita@greenfield.test",
		Password: residentPassword,
		FullName: "Rita Resident",
		JoinCode: joinCode,
		FlatNo:   "A-101",
	})
	require.NoError(t, err)

	require.Equal(t, "resident", resp.Profile.Role)
	require.Empty(t, resp.JoinCode, "Member registration should not mint a join code")

	owner, err := ownerClient.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, owner.OrganizationID, resp.Profile.OrganizationID,
		"Resident should join the owner's society")
}

// TestStaffRegistration verifies the join-code signup path for staff.
func TestStaffRegistration(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	_, joinCode := setupOwner(t, baseURL)

	client := newClient(t, baseURL)
	resp, err := client.RegisterStaff(t.Context(), societysdk.RegisterStaffRequest{
		Email:      "sam@greenfield.test",
		Password:   staffPassword,
		FullName:   "Sam Staff",
		JoinCode:   joinCode,
		Department: "maintenance",
		Title:      "electrician",
	})
	require.NoError(t, err)
	require.Equal(t, "staff", resp.Profile.Role)
}

// TestResidentRegistrationRejectsBadJoinCodes verifies malformed codes are a
// 400 and well-formed but unknown codes are a 404, in both cases without
// leaving an account behind.
func TestResidentRegistrationRejectsBadJoinCodes(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	setupOwner(t, baseURL)

	client := newClient(t, baseURL)

	req := societysdk.RegisterResidentRequest{
		Email:    "rita@greenfield.test",
		Password: residentPassword,
		FullName: "Rita Resident",
		JoinCode: "not-a-code",
		FlatNo:   "A-101",
	}
	_, err := client.RegisterResident(t.Context(), req)
	assertStatus(t, err, http.StatusBadRequest, "Malformed join code")

	req.JoinCode = "ZZZ-999"
	_, err = client.RegisterResident(t.Context(), req)
	assertStatus(t, err, http.StatusNotFound, "Unknown join code")

	// Neither attempt should have created the identity, so login fails.
	_, err = client.Login(t.Context(), req.Email, req.Password)
	assertStatus(t, err, http.StatusUnauthorized, "Login after failed registration")
}

// TestDuplicateEmailRejected verifies a second registration with the same
// email is a conflict.
func TestDuplicateEmailRejected(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	_, joinCode := setupOwner(t, baseURL)

	client := newClient(t, baseURL)
	_, err := client.RegisterResident(t.Context(), societysdk.RegisterResidentRequest{
		Email:    ownerEmail,
		Password: residentPassword,
		FullName: "Rita Resident",
		JoinCode: joinCode,
		FlatNo:   "A-101",
	})
	assertStatus(t, err, http.StatusConflict, "Duplicate email")
}

// TestRegistrationValidatesRequiredFields verifies missing fields are a 400.
func TestRegistrationValidatesRequiredFields(t *testing.T) {
	baseURL, cleanup := setupSocietyContainer(t)
	defer cleanup()

	client := newClient(t, baseURL)

	_, err := client.RegisterOwner(t.Context(), societysdk.RegisterOwnerRequest{
		Email: ownerEmail,
	})
	assertStatus(t, err, http.StatusBadRequest, "Owner registration without password or society name")
}
